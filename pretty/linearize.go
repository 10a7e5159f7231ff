package pretty

// linearize walks doc depth-first and pushes its stream-element
// translation to emit, in document order. No element carries hpos at
// this stage.
func linearize(doc Document, emit func(element)) {
	switch d := doc.(type) {
	case Text:
		emit(&textElem{payload: d.S})

	case Cond:
		emit(&condElem{small: d.Small, tail: d.Tail, cont: d.Cont})

	case Concat:
		for _, child := range d.Children {
			linearize(child, emit)
		}

	case Group:
		emit(&groupBeginElem{})
		linearize(d.Child, emit)
		emit(&groupEndElem{})

	case Nest:
		// A nest always wraps its own fit-or-break decision, so the
		// indentation scope always coincides with a group.
		emit(&nestBeginElem{})
		emit(&groupBeginElem{})
		linearize(d.Child, emit)
		emit(&groupEndElem{})
		emit(&nestEndElem{})

	default:
		panic("pretty: unknown document variant")
	}
}
