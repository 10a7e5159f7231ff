package pretty

// element is one node of the linearized document stream. hpos, when
// non-nil, is the horizontal position the element's last character
// would occupy assuming no line break precedes it. The zero value of
// each element type is never meaningful on its own; linearize builds
// every element with hpos unset, and the later stages fill it in.
type element interface {
	isElement()
}

// textElem is the streamed form of Text.
type textElem struct {
	payload string
	hpos    *int
}

func (*textElem) isElement() {}

// condElem is the streamed form of Cond, argument order swapped to
// (small, tail, cont) to match how the layout emitter consumes it.
type condElem struct {
	small, tail, cont string
	hpos              *int
}

func (*condElem) isElement() {}

// nestBeginElem opens a Nest's indentation scope. Its hpos is never
// populated; no downstream stage needs it.
type nestBeginElem struct{}

func (*nestBeginElem) isElement() {}

// nestEndElem closes a Nest's indentation scope.
type nestEndElem struct {
	hpos *int
}

func (*nestEndElem) isElement() {}

// groupBeginElem opens a Group's fit-or-break decision. Its hpos is
// unset until the corrector rewrites it to the matching groupEndElem's
// hpos.
type groupBeginElem struct {
	hpos *int
}

func (*groupBeginElem) isElement() {}

// groupEndElem closes a Group's fit-or-break decision.
type groupEndElem struct {
	hpos *int
}

func (*groupEndElem) isElement() {}

func intPtr(n int) *int { return &n }

// mustHpos panics if e does not carry an hpos; every stage past the
// annotator relies on this being a bug-class, not a runtime, error.
func mustHpos(p *int, what string) int {
	if p == nil {
		panic("pretty: " + what + " missing required hpos")
	}
	return *p
}
