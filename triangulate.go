package shape

// Triangulation is the result of triangulating a shape's fill region: a
// vertex set (possibly a superset of the input, when the service inserts
// points), an edge set, and a face set, each face referencing vertices by
// index. A computed-but-empty result has empty, non-nil slices; that is
// how it stays distinguishable from a stale cache slot.
type Triangulation struct {
	Vertices []Point
	Edges    []Edge
	Faces    []Face
}

// Triangulator decomposes a region bounded by constraint edges into
// triangles. Implementations are treated as pure functions: the same
// vertex/edge input is assumed to yield the same output, so results are
// cached until the shape's vertices change.
//
// The default implementation is EarClip; constrained Delaunay or other
// external services plug in via WithTriangulator.
type Triangulator interface {
	// Triangulate returns a triangulation of the region outlined by
	// vertices and constraint edges. Degenerate input (fewer than three
	// vertices) should yield an empty Triangulation, not an error.
	Triangulate(vertices []Point, edges []Edge) (Triangulation, error)
}

// ensureTriangulation computes the cached triangulation if it is stale.
// Inputs with fewer than three vertices are degenerate and cache an empty
// result without invoking the service. A service failure is wrapped in
// *TriangulationError and nothing is cached, so the next read retries.
func (s *Shape) ensureTriangulation() (Triangulation, error) {
	if t, ok := s.tri.get(); ok {
		return t, nil
	}

	if len(s.vertices) < 3 {
		t := emptyTriangulation()
		s.tri.set(t)
		return t, nil
	}

	t, err := s.triangulator.Triangulate(s.vertices, s.Edges())
	if err != nil {
		return Triangulation{}, &TriangulationError{Err: err}
	}

	// Normalize: an empty or partial service result is stored as empty
	// slices, never nil, so "computed but empty" is a real cache state.
	if t.Vertices == nil {
		t.Vertices = []Point{}
	}
	if t.Edges == nil {
		t.Edges = []Edge{}
	}
	if t.Faces == nil {
		t.Faces = []Face{}
	}

	s.tri.set(t)
	Logger().Debug("shape: retriangulated",
		"in_vertices", len(s.vertices),
		"out_vertices", len(t.Vertices),
		"faces", len(t.Faces))
	return t, nil
}

func emptyTriangulation() Triangulation {
	return Triangulation{
		Vertices: []Point{},
		Edges:    []Edge{},
		Faces:    []Face{},
	}
}

// DrawVertices returns the vertex buffer to draw the shape's fill from:
// the triangulated point set when the shape requires triangulation,
// otherwise the raw vertex store. The returned slice is owned by the
// shape and must not be modified.
func (s *Shape) DrawVertices() ([]Point, error) {
	if !s.NeedsTriangulation() {
		return s.vertices, nil
	}
	t, err := s.ensureTriangulation()
	if err != nil {
		return nil, err
	}
	return t.Vertices, nil
}

// DrawEdges returns the edge buffer to draw from: the triangulated edge
// set when the shape requires triangulation, otherwise Edges. The
// returned slice is owned by the shape and must not be modified.
func (s *Shape) DrawEdges() ([]Edge, error) {
	if !s.NeedsTriangulation() {
		return s.Edges(), nil
	}
	t, err := s.ensureTriangulation()
	if err != nil {
		return nil, err
	}
	return t.Edges, nil
}

// DrawFaces returns the triangle faces filling the shape, or an empty
// slice for shapes that are never filled (points and paths). The returned
// slice is owned by the shape and must not be modified.
func (s *Shape) DrawFaces() ([]Face, error) {
	if !s.NeedsTriangulation() {
		return []Face{}, nil
	}
	t, err := s.ensureTriangulation()
	if err != nil {
		return nil, err
	}
	return t.Faces, nil
}

// DrawOutlineVertices returns the vertex buffer to stroke the outline
// from. Open shapes stroke along the draw (triangulated) vertex set
// rather than the raw input vertices; closed shapes stroke the raw store.
// The returned slice is owned by the shape and must not be modified.
func (s *Shape) DrawOutlineVertices() ([]Point, error) {
	if s.open {
		return s.DrawVertices()
	}
	return s.vertices, nil
}

// DrawOutlineEdges returns the edge buffer to stroke the outline from:
// the non-wrapping outline sequence for open shapes, otherwise Edges.
// The returned slice is owned by the shape and must not be modified.
func (s *Shape) DrawOutlineEdges() ([]Edge, error) {
	t := s.ensureTopology()
	if s.open {
		return t.outline, nil
	}
	return t.edges, nil
}
