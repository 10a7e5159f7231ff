package pretty

// annotator tags each element with the horizontal position its last
// character would occupy, assuming the whole document is laid out on
// one line. It cannot annotate groupBeginElem or nestBeginElem, since
// their extent isn't known until the matching close arrives.
type annotator struct {
	next     func(element)
	position int
}

func newAnnotator(next func(element)) *annotator {
	return &annotator{next: next}
}

func (a *annotator) push(e element) {
	switch v := e.(type) {
	case *textElem:
		a.position += len(v.payload)
		v.hpos = intPtr(a.position)

	case *condElem:
		a.position += len(v.small)
		v.hpos = intPtr(a.position)

	case *groupEndElem:
		v.hpos = intPtr(a.position)

	case *nestEndElem:
		v.hpos = intPtr(a.position)

	case *groupBeginElem, *nestBeginElem:
		// position of the last character is unknown until the
		// matching close arrives; leave hpos unset.

	default:
		panic("pretty: annotator saw unknown element")
	}

	a.next(e)
}
