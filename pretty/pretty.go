package pretty

// Print renders doc to fit within width columns per line wherever
// possible, breaking lines only at Cond points and only when the
// enclosing Group does not fit. width = 0 is legal and forces every
// optional break to fire.
//
// Print is single-threaded and synchronous: it produces one complete
// string, owns a fresh pipeline instance for the call, and allocates
// no more lookahead buffering than the deepest Group nesting in doc.
// doc is read-only; the same value may be rendered concurrently by
// independent calls to Print.
func Print(width uint, doc Document) string {
	e := newEmitter(int(width))
	c := newCorrector(e.push)
	a := newAnnotator(c.push)
	linearize(doc, a.push)
	return e.result()
}
