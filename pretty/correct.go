package pretty

// corrector rewrites each groupBeginElem to carry the hpos of its
// matching groupEndElem, so the layout emitter can decide fit-or-break
// the moment a group opens rather than only at its close.
//
// It buffers the interior of each open group in a stack of lists; an
// empty stack means "pass-through mode" (no group is currently open).
// Memory held at any instant is bounded by the deepest unclosed group.
type corrector struct {
	next    func(element)
	buffers [][]element
}

func newCorrector(next func(element)) *corrector {
	return &corrector{next: next}
}

func (c *corrector) push(e element) {
	switch v := e.(type) {
	case *groupBeginElem:
		if v.hpos != nil {
			panic("pretty: groupBeginElem arrived at corrector already carrying hpos")
		}
		c.buffers = append(c.buffers, nil)
		return // never forwarded directly; rewritten at groupEndElem

	case *groupEndElem:
		mustHpos(v.hpos, "groupEndElem")
		n := len(c.buffers)
		if n == 0 {
			panic("pretty: unbalanced group: groupEndElem with no open group")
		}
		buffered := c.buffers[n-1]
		c.buffers = c.buffers[:n-1]

		corrected := &groupBeginElem{hpos: intPtr(*v.hpos)}

		if len(c.buffers) == 0 {
			c.next(corrected)
			for _, be := range buffered {
				c.next(be)
			}
			c.next(v)
			return
		}

		top := n - 2
		c.buffers[top] = append(c.buffers[top], corrected)
		c.buffers[top] = append(c.buffers[top], buffered...)
		c.buffers[top] = append(c.buffers[top], v)
		return

	default:
		if len(c.buffers) == 0 {
			c.next(e)
			return
		}
		top := len(c.buffers) - 1
		c.buffers[top] = append(c.buffers[top], e)
	}
}
