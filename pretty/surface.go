package pretty

// CommaSeparated renders xs as "x0, x1, …, xn" with a breakable space
// after each comma, all sharing one indentation scope. An empty slice
// renders as nothing.
func CommaSeparated(xs []Document) Document {
	if len(xs) == 0 {
		return Empty()
	}
	children := make([]Document, 0, len(xs)*3-2)
	children = append(children, xs[0])
	for _, x := range xs[1:] {
		children = append(children, NewText(","), Br(), x)
	}
	return NewNest(NewConcat(children...))
}

// ArgList renders xs as a parenthesized, comma-separated argument
// list: "(" + CommaSeparated(xs) + ")".
func ArgList(xs []Document) Document {
	return NewConcat(NewText("("), CommaSeparated(xs), NewText(")"))
}

// DottedList renders xs as a dotted chain, e.g. "a.b.c". The first
// separator is a plain "." that never breaks (breaking right after
// the receiver looks wrong); every later separator is the
// break-capable Dot. Everything after the first element shares one
// indentation scope that begins at the first ".", so a broken chain's
// continuation dots line up under that first ".".
func DottedList(xs []Document) Document {
	switch len(xs) {
	case 0:
		return Empty()
	case 1:
		return NewNest(xs[0])
	}
	rest := make([]Document, 0, (len(xs)-1)*2)
	rest = append(rest, NewText("."), xs[1])
	for _, x := range xs[2:] {
		rest = append(rest, Dot(), x)
	}
	return NewConcat(xs[0], NewNest(NewConcat(rest...)))
}

// FuncCall renders a call of name applied to xs: "name(x0, x1, …)".
func FuncCall(name string, xs []Document) Document {
	return NewConcat(NewText(name), ArgList(xs))
}
