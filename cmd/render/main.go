package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/drsaluml/ashkalgo/internal/camera"
	"github.com/drsaluml/ashkalgo/internal/colorspace"
	"github.com/drsaluml/ashkalgo/internal/config"
	"github.com/drsaluml/ashkalgo/internal/imageio"
	"github.com/drsaluml/ashkalgo/internal/lighting"
	"github.com/drsaluml/ashkalgo/internal/mathutil"
	"github.com/drsaluml/ashkalgo/internal/raster"
	"github.com/drsaluml/ashkalgo/internal/render"
	"github.com/drsaluml/ashkalgo/internal/scene"
	"github.com/drsaluml/ashkalgo/internal/scenefile"
	"github.com/drsaluml/ashkalgo/internal/shapes"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to a scene.json file (default: built-in demo cube)")
	out := flag.String("out", "", "Output WebP path (default: render.webp)")
	size := flag.Int("size", 0, "Square render size in pixels (sets both width and height)")
	width := flag.Int("width", 0, "Render width in pixels (default: 512, or -size)")
	height := flag.Int("height", 0, "Render height in pixels (default: 512, or -size)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	w, h := *width, *height
	if *size > 0 {
		w, h = *size, *size
	}

	cfg.Resolve(config.Flags{
		ScenePath: *sceneFile,
		Width:     w,
		Height:    h,
		Quality:   *quality,
	})
	if *supersample > 0 {
		cfg.Supersample = *supersample
	}

	outPath := outputPath(*out)

	var s *scene.Scene
	var cam camera.Camera
	if cfg.ScenePath != "" {
		doc, err := scenefile.Load(cfg.ScenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		s = doc.BuildScene()
		cam = doc.BuildCamera()
	} else {
		s, cam = demoScene()
	}

	fmt.Printf("ashkalgo renderer\n")
	fmt.Printf("Scene: %d model(s)\n", len(s.Models()))
	fmt.Printf("Output: %dx%d (supersample %dx) -> %s\n", cfg.Width, cfg.Height, cfg.Supersample, outPath)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	renderWidth := cfg.Width * cfg.Supersample
	renderHeight := cfg.Height * cfg.Supersample
	background := colorspace.NewColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], cfg.Background[3])

	fb := raster.NewFrameBuffer(renderWidth, renderHeight, background)
	depth := raster.NewDepthBuffer(renderWidth, renderHeight)
	render.ResetFrame(fb, depth, background)
	render.Render(s, cam, fb, depth)

	img := imageio.ToNRGBA(fb)
	img = imageio.Downsample(img, cfg.Width, cfg.Height)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	if err := imageio.EncodeWebP(outPath, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding WebP: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs -> %s\n", elapsed.Seconds(), outPath)
}

func outputPath(out string) string {
	if out == "" {
		return "render.webp"
	}
	return out
}

// demoScene builds a small built-in scene (a lit cube) so the binary is
// runnable standalone without a -scene file.
func demoScene() (*scene.Scene, camera.Camera) {
	ambient := lighting.NewAmbientLight(colorspace.NewColor(255, 255, 255, 255), 0.25)
	directional := lighting.NewDirectionalLight(
		mathutil.NewVector(-0.4, -1, -0.3),
		colorspace.NewColor(255, 255, 255, 255),
		0.9,
	)

	s := scene.New(ambient, directional)

	material := colorspace.NewMaterial(colorspace.NewSolidSampler(colorspace.NewColor(200, 70, 60, 255)))
	model := scene.NewModel(shapes.Cube(1.5, material))
	model.Transformation().Apply(mathutil.Translate(mathutil.NewVector(0, 0, 8)), nil)
	s.Add(model)

	cam := camera.New()
	return s, cam
}
