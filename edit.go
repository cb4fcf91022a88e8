package shape

// EditSession is a scoped mutation context for a shape's vertices.
// Appended vertices accumulate in a buffer; End commits the buffer
// through the vertex sanitizer as the shape's new vertex store,
// invalidating all derived data. At most one session may be open on a
// shape at a time, and a session is single-use.
type EditSession struct {
	shape *Shape
	buf   [][]float32
	done  bool
}

// BeginEdit opens an edit session. It fails with ErrEditActive if one is
// already open. When reset is true the vertex store is cleared
// immediately, so reads during the session see an empty shape and the
// committed result is exactly the appended vertices. When reset is false
// the existing vertices remain readable during the session, but commit
// still replaces the store with the session buffer; callers extending a
// shape should re-append the existing vertices (Vertices returns a copy
// for this) before adding new ones.
//
// Callers are responsible for ending the session, normally via defer:
//
//	es, err := s.BeginEdit(true)
//	if err != nil {
//		return err
//	}
//	defer es.End()
//
// Prefer Edit, which scopes the session automatically.
func (s *Shape) BeginEdit(reset bool) (*EditSession, error) {
	if s.session != nil {
		return nil, ErrEditActive
	}
	if reset {
		s.setVertices([]Point{})
	}
	es := &EditSession{shape: s}
	s.session = es
	return es, nil
}

// Append buffers a raw vertex of arbitrary dimension. Dimensionality is
// validated at commit time, not here. It fails with ErrNotEditing once
// the session has ended.
func (es *EditSession) Append(raw []float32) error {
	if es.done {
		return ErrNotEditing
	}
	v := make([]float32, len(raw))
	copy(v, raw)
	es.buf = append(es.buf, v)
	return nil
}

// End closes the session and commits its buffer through the vertex
// sanitizer, invalidating all derived data. The session transitions to
// closed even when the commit fails, so a bad append can never leave the
// shape stuck in edit mode. Calling End a second time fails with
// ErrNotEditing.
func (es *EditSession) End() error {
	if es.done {
		return ErrNotEditing
	}
	es.done = true
	es.shape.session = nil
	return es.shape.SetVertices(es.buf)
}

// AppendVertex buffers a vertex in the currently open edit session. It
// fails with ErrNotEditing when no session is open.
func (s *Shape) AppendVertex(raw []float32) error {
	if s.session == nil {
		return ErrNotEditing
	}
	return s.session.Append(raw)
}

// Editing reports whether an edit session is currently open.
func (s *Shape) Editing() bool {
	return s.session != nil
}

// Edit runs fn inside a scoped edit session. The session is committed
// when fn returns, even when it returns an error or panics, so the shape
// never remains in edit mode. fn's error wins over the commit error when
// both occur.
func (s *Shape) Edit(reset bool, fn func(*EditSession) error) (err error) {
	es, err := s.BeginEdit(reset)
	if err != nil {
		return err
	}
	defer func() {
		endErr := es.End()
		if err == nil {
			err = endErr
		}
	}()
	return fn(es)
}
