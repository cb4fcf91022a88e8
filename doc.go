// Package shape provides a retained 2D shape model for Go.
//
// # Overview
//
// shape is the retained-geometry layer of the GoGPU ecosystem: a Shape owns
// an ordered vertex list and derives from it everything a renderer needs to
// draw the shape: outline edges, a fill triangulation, and draw-ready
// vertex/index slices. Derived data is computed lazily and cached; any
// mutation of the vertex store invalidates all downstream caches in one
// step, so reads never observe stale topology.
//
// # Quick Start
//
//	import "github.com/gogpu/shape"
//
//	// A closed quad.
//	s, err := shape.New([][]float32{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	edges := s.Edges()           // [(0 1) (1 2) (2 3) (3 0)]
//	faces, err := s.DrawFaces()  // fill triangulation
//
// # Shape Kinds
//
// A shape is a point cloud, an open/closed path, or a filled polygon,
// decided once at construction from an attribute string ("point", "path",
// "open", "closed"). Only polygons are triangulated; points and paths pass
// their raw vertices through to the draw accessors.
//
// # Editing
//
// Vertices are replaced wholesale with SetVertices, patched with
// UpdateVertex, or rebuilt inside an edit session:
//
//	err := s.Edit(true, func(es *shape.EditSession) error {
//		es.Append([]float32{0, 0})
//		es.Append([]float32{1, 0})
//		es.Append([]float32{1, 1})
//		return nil
//	})
//
// The session commits on scope exit even if the body returns an error, so a
// shape can never be left stuck in edit mode.
//
// # Triangulation
//
// Fill triangulation is delegated to a Triangulator. The default is an
// ear-clipping implementation backed by github.com/rclancey/earcut; inject a
// constrained Delaunay (or any other) implementation with WithTriangulator.
//
// # Concurrency
//
// A Shape is exclusively owned by its caller and is not safe for concurrent
// use. All methods are expected to run on one logical thread, typically the
// host application's render/update thread.
package shape
