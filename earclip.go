package shape

import (
	"fmt"

	"github.com/rclancey/earcut"
)

// EarClip is the default Triangulator: ear clipping over the input ring
// via github.com/rclancey/earcut. It triangulates the polygon outlined by
// the vertices in their input order and inserts no points, so the output
// vertex set always equals the input. The constraint edges are accepted
// for interface compatibility; ear clipping derives the boundary from
// vertex order, and constraints beyond the single outer ring (holes,
// internal edges) are not supported by this implementation.
type EarClip struct{}

// NewEarClip creates the default ear-clipping triangulator.
func NewEarClip() *EarClip {
	return &EarClip{}
}

// Triangulate implements Triangulator. Fewer than three vertices is a
// degenerate input and yields an empty Triangulation.
func (*EarClip) Triangulate(vertices []Point, edges []Edge) (Triangulation, error) {
	if len(vertices) < 3 {
		return emptyTriangulation(), nil
	}

	// earcut wants flat float64 coordinates: [x0, y0, x1, y1, ...].
	coords := make([]float64, len(vertices)*2)
	for i, p := range vertices {
		coords[i*2] = float64(p.X)
		coords[i*2+1] = float64(p.Y)
	}

	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return Triangulation{}, fmt.Errorf("earcut: %w", err)
	}
	if len(indices)%3 != 0 {
		return Triangulation{}, fmt.Errorf("earcut: %d triangle indices, not divisible by 3", len(indices))
	}

	out := Triangulation{
		Vertices: make([]Point, len(vertices)),
		Faces:    make([]Face, 0, len(indices)/3),
	}
	copy(out.Vertices, vertices)

	for i := 0; i+2 < len(indices); i += 3 {
		out.Faces = append(out.Faces, Face{
			A: indices[i],
			B: indices[i+1],
			C: indices[i+2],
		})
	}
	out.Edges = faceEdges(out.Faces)
	return out, nil
}

// faceEdges derives the unique undirected edge set of a face list, in
// first-seen order.
func faceEdges(faces []Face) []Edge {
	seen := make(map[Edge]struct{}, len(faces)*3)
	edges := make([]Edge, 0, len(faces)*3)
	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		e := Edge{A: a, B: b}
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		edges = append(edges, e)
	}
	for _, f := range faces {
		add(f.A, f.B)
		add(f.B, f.C)
		add(f.C, f.A)
	}
	return edges
}
