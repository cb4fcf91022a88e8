package shape

// Option configures a Shape during creation.
// Use functional options to customize Shape behavior.
//
// Example:
//
//	// A visible open path.
//	s, err := shape.New(points,
//		shape.WithAttribs("path open"),
//		shape.WithVisible(true))
type Option func(*shapeOptions)

// shapeOptions holds optional configuration for Shape creation.
type shapeOptions struct {
	attribs      string
	fill         Color
	stroke       Color
	visible      bool
	children     []*Shape
	triangulator Triangulator
	renderState  RenderState
}

// defaultShapeOptions returns the default shape options: a closed,
// invisible polygon whose colors resolve against the renderer state (or to
// no color when none is attached).
func defaultShapeOptions() shapeOptions {
	return shapeOptions{
		attribs: "closed",
		fill:    AutoColor(),
		stroke:  AutoColor(),
	}
}

// WithAttribs sets the attribute string that controls shape drawing.
// Attributes are space separated; each should be one of "point", "path",
// "open", "closed". The default is "closed".
func WithAttribs(attribs string) Option {
	return func(o *shapeOptions) {
		o.attribs = attribs
	}
}

// WithFill sets the initial fill color. The default is AutoColor.
func WithFill(c Color) Option {
	return func(o *shapeOptions) {
		o.fill = c
	}
}

// WithStroke sets the initial stroke color. The default is AutoColor.
func WithStroke(c Color) Option {
	return func(o *shapeOptions) {
		o.stroke = c
	}
}

// WithVisible sets the initial visibility. Shapes are invisible by
// default.
func WithVisible(visible bool) Option {
	return func(o *shapeOptions) {
		o.visible = visible
	}
}

// WithChildren attaches sub-shapes to the new shape.
func WithChildren(children ...*Shape) Option {
	return func(o *shapeOptions) {
		o.children = append(o.children, children...)
	}
}

// WithTriangulator sets a custom fill triangulator for the shape.
// Use this for dependency injection of a constrained Delaunay or other
// external triangulation service. The default is NewEarClip().
func WithTriangulator(t Triangulator) Option {
	return func(o *shapeOptions) {
		o.triangulator = t
	}
}

// WithRenderState attaches the renderer color state that auto colors
// resolve against. Without it, auto colors resolve to no color.
func WithRenderState(rs RenderState) Option {
	return func(o *shapeOptions) {
		o.renderState = rs
	}
}
