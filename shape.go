package shape

// Edge is an ordered pair of vertex indices denoting a connection, used
// for outline drawing and as a triangulation constraint.
type Edge struct {
	A, B int
}

// Face is a triangle referencing three vertex indices.
type Face struct {
	A, B, C int
}

// topology is the derived edge data for one vertex-store generation.
// edges and outline are always computed together: outline equals edges
// except for open shapes, where it is the non-wrapping variant.
type topology struct {
	edges   []Edge
	outline []Edge
}

// Shape is a retained 2D shape: an ordered vertex list plus lazily
// derived topology and triangulation. Mutate vertices only through
// SetVertices, UpdateVertex, or an edit session; every mutation path
// funnels through a single invalidation step so derived data is never
// read stale.
//
// A Shape is not safe for concurrent use.
type Shape struct {
	vertices        []Point
	outlineVertices []Point3

	kind Kind
	open bool

	fill    Color
	stroke  Color
	visible bool

	transform     Mat4
	drawTransform Mat4

	children []*Shape

	triangulator Triangulator
	renderState  RenderState

	topo memo[topology]
	tri  memo[Triangulation]

	session *EditSession
}

// New creates a shape from raw vertices (possibly empty). Each vertex may
// have any dimension; the sanitization rules of SetVertices apply. The
// attribute string (see WithAttribs) decides the shape kind once, at
// construction.
func New(vertices [][]float32, opts ...Option) (*Shape, error) {
	o := defaultShapeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	kind, open := parseAttribs(o.attribs)
	s := &Shape{
		kind:          kind,
		open:          open,
		visible:       o.visible,
		transform:     Identity4(),
		drawTransform: Identity4(),
		children:      o.children,
		triangulator:  o.triangulator,
		renderState:   o.renderState,
	}
	if s.triangulator == nil {
		s.triangulator = NewEarClip()
	}

	if err := s.SetVertices(vertices); err != nil {
		return nil, err
	}

	s.SetFill(o.fill)
	s.SetStroke(o.stroke)
	return s, nil
}

// Kind returns the shape's primitive category.
func (s *Shape) Kind() Kind {
	return s.kind
}

// Open reports whether the shape carries the "open" attribute.
func (s *Shape) Open() bool {
	return s.open
}

// NeedsTriangulation reports whether the shape's fill requires a
// triangulation (true only for polygons).
func (s *Shape) NeedsTriangulation() bool {
	return s.kind == KindPolygon
}

// invalidate marks all derived data stale. It is the single invalidation
// point for every mutation path; derived fields are never reset anywhere
// else.
func (s *Shape) invalidate() {
	s.topo.invalidate()
	s.tri.invalidate()
	Logger().Debug("shape: caches invalidated", "kind", s.kind.String(), "vertices", len(s.vertices))
}

// SetFill sets the fill color. Auto resolves against the attached
// renderer state immediately; without renderer state, or with filling
// disabled, auto becomes no color.
func (s *Shape) SetFill(c Color) {
	s.fill = s.resolveColor(c, func(rs RenderState) (bool, RGBA) { return rs.Fill() })
}

// Fill returns the resolved fill color.
func (s *Shape) Fill() Color {
	return s.fill
}

// SetStroke sets the stroke color. Resolution follows SetFill.
func (s *Shape) SetStroke(c Color) {
	s.stroke = s.resolveColor(c, func(rs RenderState) (bool, RGBA) { return rs.Stroke() })
}

// Stroke returns the resolved stroke color.
func (s *Shape) Stroke() Color {
	return s.stroke
}

// resolveColor collapses the auto variant at assignment time. Explicit
// and absent colors pass through unchanged.
func (s *Shape) resolveColor(c Color, read func(RenderState) (bool, RGBA)) Color {
	if !c.IsAuto() {
		return c
	}
	if s.renderState == nil {
		return NoColor()
	}
	enabled, rgba := read(s.renderState)
	if !enabled {
		return NoColor()
	}
	return ExplicitColor(rgba)
}

// Visible reports whether the shape should be drawn.
func (s *Shape) Visible() bool {
	return s.visible
}

// SetVisible toggles shape visibility.
func (s *Shape) SetVisible(visible bool) {
	s.visible = visible
}

// Transform returns the shape's persistent transform matrix.
func (s *Shape) Transform() Mat4 {
	return s.transform
}

// SetTransform replaces the persistent transform matrix.
func (s *Shape) SetTransform(m Mat4) {
	s.transform = m
}

// DrawTransform returns the per-draw transform, applied on top of
// Transform at draw time without mutating it.
func (s *Shape) DrawTransform() Mat4 {
	return s.drawTransform
}

// SetDrawTransform replaces the per-draw transform.
func (s *Shape) SetDrawTransform(m Mat4) {
	s.drawTransform = m
}

// ResetDrawTransform restores the per-draw transform to identity.
func (s *Shape) ResetDrawTransform() {
	s.drawTransform = Identity4()
}

// Children returns the shape's sub-shapes. The returned slice is owned by
// the shape and must not be modified.
func (s *Shape) Children() []*Shape {
	return s.children
}

// AddChild appends a sub-shape.
func (s *Shape) AddChild(child *Shape) {
	s.children = append(s.children, child)
}
