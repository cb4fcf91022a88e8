package shape

import "strings"

// Kind is the primitive category of a shape, decided once at construction.
type Kind int

const (
	// KindPolygon is a closed region with a fill triangulation.
	KindPolygon Kind = iota
	// KindPath is a stroked sequence of line segments, never filled.
	KindPath
	// KindPoint is a bare point set with no edges.
	KindPoint
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindPath:
		return "path"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// parseAttribs resolves a space-separated attribute string into a kind and
// an open flag. "point" wins over "path"; anything else is a polygon.
// Unrecognized tokens are ignored, matching the lenient construction
// contract ("closed" is such a token: it is simply the absence of "open").
func parseAttribs(attribs string) (Kind, bool) {
	kind := KindPolygon
	open := false
	isPath := false
	isPoint := false
	for _, tok := range strings.Fields(strings.ToLower(attribs)) {
		switch tok {
		case "point":
			isPoint = true
		case "path":
			isPath = true
		case "open":
			open = true
		}
	}
	if isPoint {
		kind = KindPoint
	} else if isPath {
		kind = KindPath
	}
	return kind, open
}
