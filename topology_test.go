package shape

import "testing"

func edgesEqual(a, b []Edge) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEdgesByKind(t *testing.T) {
	quad := [][]float32{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	tests := []struct {
		name    string
		attribs string
		raw     [][]float32
		want    []Edge
	}{
		{
			name:    "closed polygon ring",
			attribs: "closed",
			raw:     quad,
			want:    []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		},
		{
			name:    "open polygon still rings",
			attribs: "open",
			raw:     quad,
			want:    []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		},
		{
			name:    "path does not wrap",
			attribs: "path",
			raw:     quad,
			want:    []Edge{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:    "point has no edges",
			attribs: "point",
			raw:     [][]float32{{1, 1}},
			want:    []Edge{},
		},
		{
			name:    "empty polygon",
			attribs: "closed",
			raw:     nil,
			want:    []Edge{},
		},
		{
			name:    "single-vertex polygon",
			attribs: "closed",
			raw:     [][]float32{{1, 1}},
			want:    []Edge{},
		},
		{
			name:    "single-vertex path",
			attribs: "path",
			raw:     [][]float32{{1, 1}},
			want:    []Edge{},
		},
		{
			name:    "two-vertex polygon",
			attribs: "closed",
			raw:     [][]float32{{0, 0}, {1, 1}},
			want:    []Edge{{0, 1}, {1, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.raw, WithAttribs(tt.attribs))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := s.Edges(); !edgesEqual(got, tt.want) {
				t.Errorf("Edges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonRingCoversAllIndices(t *testing.T) {
	raw := [][]float32{{0, 0}, {4, 0}, {4, 3}, {2, 5}, {0, 3}}
	s, err := New(raw)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	edges := s.Edges()
	if len(edges) != len(raw) {
		t.Fatalf("len(Edges()) = %d, want %d", len(edges), len(raw))
	}

	// Each index must appear exactly once as a source and once as a target.
	from := make(map[int]int)
	to := make(map[int]int)
	for _, e := range edges {
		from[e.A]++
		to[e.B]++
	}
	for i := range raw {
		if from[i] != 1 || to[i] != 1 {
			t.Errorf("index %d appears %d times as source, %d as target; want 1 and 1", i, from[i], to[i])
		}
	}
}

func TestOutlineEdges(t *testing.T) {
	quad := [][]float32{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	t.Run("closed polygon outline equals edges", func(t *testing.T) {
		s, err := New(quad)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if !edgesEqual(s.OutlineEdges(), s.Edges()) {
			t.Errorf("OutlineEdges() = %v, want %v", s.OutlineEdges(), s.Edges())
		}
	})

	t.Run("open polygon outline does not wrap", func(t *testing.T) {
		s, err := New(quad, WithAttribs("open"))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		want := []Edge{{0, 1}, {1, 2}, {2, 3}}
		if got := s.OutlineEdges(); !edgesEqual(got, want) {
			t.Errorf("OutlineEdges() = %v, want %v", got, want)
		}
		// Edges itself still rings.
		if got := s.Edges(); len(got) != 4 {
			t.Errorf("len(Edges()) = %d, want 4", len(got))
		}
	})
}

func TestEdgesRecomputedAfterMutation(t *testing.T) {
	s, err := New([][]float32{{0, 0}, {1, 0}, {1, 1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := len(s.Edges()); got != 3 {
		t.Fatalf("len(Edges()) = %d, want 3", got)
	}

	// Growing the vertex store must grow the ring on the next read.
	if err := s.SetVertices([][]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}); err != nil {
		t.Fatalf("SetVertices() error = %v", err)
	}
	if got := len(s.Edges()); got != 4 {
		t.Errorf("len(Edges()) after SetVertices = %d, want 4", got)
	}
}

func TestRingAndPathEdgeHelpers(t *testing.T) {
	for n := 0; n < 2; n++ {
		if got := ringEdges(n); len(got) != 0 {
			t.Errorf("ringEdges(%d) = %v, want empty", n, got)
		}
		if got := pathEdges(n); len(got) != 0 {
			t.Errorf("pathEdges(%d) = %v, want empty", n, got)
		}
	}
	if got := ringEdges(2); !edgesEqual(got, []Edge{{0, 1}, {1, 0}}) {
		t.Errorf("ringEdges(2) = %v", got)
	}
	if got := pathEdges(2); !edgesEqual(got, []Edge{{0, 1}}) {
		t.Errorf("pathEdges(2) = %v", got)
	}
}
