package clip

// Fan triangulates a clipped polygon of 3 or 4 vertices into one or two
// triangles, in fan order from the first vertex.
func Fan(vertices []ShadedVertex) [][3]ShadedVertex {
	switch len(vertices) {
	case 3:
		return [][3]ShadedVertex{{vertices[0], vertices[1], vertices[2]}}
	case 4:
		return [][3]ShadedVertex{
			{vertices[0], vertices[1], vertices[2]},
			{vertices[0], vertices[2], vertices[3]},
		}
	default:
		return nil
	}
}
