package shape

import "fmt"

// vertexDim is the canonical dimensionality of the vertex store.
const vertexDim = 2

// sanitizeVertices normalizes raw points of arbitrary dimension to the
// canonical 2D store. The source dimension is taken from the first point:
// points longer than the target lose their trailing components, shorter
// points are right-padded with zeros. A point whose length matches
// neither the source nor the target dimension is a mixed-dimension input
// and fails with a *DimensionError.
func sanitizeVertices(raw [][]float32) ([]Point, error) {
	sanitized := make([]Point, 0, len(raw))
	if len(raw) == 0 {
		return sanitized, nil
	}

	sdim := len(raw[0])
	for _, v := range raw {
		if len(v) != sdim && len(v) != vertexDim {
			return nil, &DimensionError{Want: sdim, Got: len(v)}
		}
		var p Point
		if len(v) > 0 {
			p.X = v[0]
		}
		if len(v) > 1 {
			p.Y = v[1]
		}
		sanitized = append(sanitized, p)
	}
	return sanitized, nil
}

// SetVertices replaces the vertex store with a sanitized copy of raw and
// invalidates all derived data. See sanitizeVertices for the
// pad/truncate rules. The 3D outline-vertex copy is rebuilt as well.
func (s *Shape) SetVertices(raw [][]float32) error {
	vertices, err := sanitizeVertices(raw)
	if err != nil {
		return err
	}
	s.setVertices(vertices)
	return nil
}

// setVertices installs an already sanitized vertex slice. The slice is
// owned by the shape after this call.
func (s *Shape) setVertices(vertices []Point) {
	s.vertices = vertices
	s.outlineVertices = make([]Point3, len(vertices))
	for i, p := range vertices {
		s.outlineVertices[i] = Point3{X: p.X, Y: p.Y}
	}
	s.invalidate()
}

// Vertices returns a copy of the vertex store. Callers may freely modify
// the returned slice; feeding it back through SetVertices or an edit
// session is the supported way to change the shape.
func (s *Shape) Vertices() []Point {
	out := make([]Point, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Len returns the number of vertices.
func (s *Shape) Len() int {
	return len(s.vertices)
}

// OutlineVertices returns the 3D copy of the vertex store (z=0), for
// outline consumers that expect 3D coordinates. The returned slice is
// owned by the shape and must not be modified.
func (s *Shape) OutlineVertices() []Point3 {
	return s.outlineVertices
}

// UpdateVertex replaces the vertex at index i. It is permitted only
// outside an edit session and only for exactly 2D input; it invalidates
// the same caches as a full SetVertices.
func (s *Shape) UpdateVertex(i int, raw []float32) error {
	if s.session != nil {
		return ErrEditActive
	}
	if len(raw) != vertexDim {
		return &DimensionError{Want: vertexDim, Got: len(raw)}
	}
	if i < 0 || i >= len(s.vertices) {
		return fmt.Errorf("shape: vertex index %d out of range [0, %d)", i, len(s.vertices))
	}
	s.vertices[i] = Point{X: raw[0], Y: raw[1]}
	s.outlineVertices[i] = Point3{X: raw[0], Y: raw[1]}
	s.invalidate()
	return nil
}
