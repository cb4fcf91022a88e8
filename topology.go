package shape

// ringEdges returns the wrapping consecutive-pair edges (i, (i+1) mod n)
// forming a single closed ring. Degenerate inputs (n < 2) produce no
// edges.
func ringEdges(n int) []Edge {
	if n < 2 {
		return []Edge{}
	}
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{A: i, B: (i + 1) % n}
	}
	return edges
}

// pathEdges returns the non-wrapping consecutive-pair edges (i, i+1),
// stopping before the last vertex. Degenerate inputs (n < 2) produce no
// edges.
func pathEdges(n int) []Edge {
	if n < 2 {
		return []Edge{}
	}
	edges := make([]Edge, n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = Edge{A: i, B: i + 1}
	}
	return edges
}

// ensureTopology computes the edge lists for the current vertex-store
// generation if they are stale, and returns them. Point shapes have no
// edges; paths use the non-wrapping sequence; polygons use the closed
// ring. Open shapes substitute the non-wrapping sequence for the outline.
func (s *Shape) ensureTopology() topology {
	if t, ok := s.topo.get(); ok {
		return t
	}

	n := len(s.vertices)
	var t topology
	switch s.kind {
	case KindPoint:
		t.edges = []Edge{}
	case KindPath:
		t.edges = pathEdges(n)
	default:
		t.edges = ringEdges(n)
	}

	if s.open {
		t.outline = pathEdges(n)
	} else {
		t.outline = t.edges
	}

	s.topo.set(t)
	return t
}

// Edges returns the shape's outline edge list as vertex index pairs,
// computing it if stale. The returned slice is owned by the shape and
// must not be modified.
func (s *Shape) Edges() []Edge {
	return s.ensureTopology().edges
}

// OutlineEdges returns the edge list used for stroking. It equals Edges
// unless the shape is open, in which case the sequence does not wrap back
// to the first vertex. The returned slice is owned by the shape and must
// not be modified.
func (s *Shape) OutlineEdges() []Edge {
	return s.ensureTopology().outline
}
