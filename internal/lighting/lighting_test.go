package lighting

import (
	"testing"

	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
)

func TestAmbientShadeIsOrientationIndependent(t *testing.T) {
	light := NewAmbientLight(colorspace.NewColor(255, 255, 255, 255), 0.5)
	term := light.Shade()
	if term.Color != light.Color || term.Intensity != 0.5 {
		t.Fatalf("unexpected ambient term: %+v", term)
	}
}

func TestDirectionalShadeFacingLight(t *testing.T) {
	light := NewDirectionalLight(mathutil.NewVector(0, 0, 1), colorspace.NewColor(255, 255, 255, 255), 1)
	normal := mathutil.NewVector(0, 0, -1) // faces toward the light source
	term := light.Shade(normal)
	if term.Intensity <= 0 {
		t.Fatalf("expected positive intensity facing the light, got %v", term.Intensity)
	}
}

func TestDirectionalShadeFacingAwayIsZero(t *testing.T) {
	light := NewDirectionalLight(mathutil.NewVector(0, 0, 1), colorspace.NewColor(255, 255, 255, 255), 1)
	normal := mathutil.NewVector(0, 0, 1) // faces away from the light source
	term := light.Shade(normal)
	if term.Intensity != 0 {
		t.Fatalf("expected zero intensity facing away from the light, got %v", term.Intensity)
	}
}

func TestShadingTermAddSumsIntensityAndSaturatesColor(t *testing.T) {
	a := ShadingTerm{Color: colorspace.NewColor(200, 0, 0, 255), Intensity: 0.5}
	b := ShadingTerm{Color: colorspace.NewColor(100, 0, 0, 255), Intensity: 0.75}
	sum := a.Add(b)
	if sum.Color.R != 255 {
		t.Fatalf("expected saturating add to clamp at 255, got %v", sum.Color.R)
	}
	if sum.Intensity != 1.25 {
		t.Fatalf("expected intensities to sum, got %v", sum.Intensity)
	}
}

func TestApplyFullIntensityWhiteLightPassesSurfaceColor(t *testing.T) {
	term := ShadingTerm{Color: colorspace.NewColor(255, 255, 255, 255), Intensity: 1}
	surface := colorspace.NewColor(200, 100, 50, 255)
	out := Apply(term, surface)
	if out != surface {
		t.Fatalf("expected full-intensity white light to pass surface color unchanged, got %v", out)
	}
}

func TestApplyZeroIntensityProducesBlack(t *testing.T) {
	term := ShadingTerm{Color: colorspace.NewColor(255, 255, 255, 255), Intensity: 0}
	surface := colorspace.NewColor(200, 100, 50, 255)
	out := Apply(term, surface)
	if out.R != 0 || out.G != 0 || out.B != 0 {
		t.Fatalf("expected zero intensity to produce black, got %v", out)
	}
	if out.A != surface.A {
		t.Fatalf("expected alpha to pass through unchanged, got %v", out.A)
	}
}
