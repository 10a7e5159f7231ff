// Package pretty implements the Oppen/Kiselyov linear-time,
// unbounded-lookahead pretty-printing algorithm: documents built from
// a small algebra of Text, Cond, Concat, Group and Nest are laid out
// into a string that fits a chosen page width wherever possible.
package pretty

// Document is an immutable, acyclic node in the document algebra.
// Values are built bottom-up by callers and may be freely shared;
// Print consumes a Document without mutating it.
type Document interface {
	// Width is the horizontal extent of the document assuming no line
	// break occurs anywhere inside it (a Cond contributes len(small)).
	// It is a cheap inspection convenience, never load-bearing for
	// correctness of Print.
	Width() int

	isDocument()
}

// Text is literal content. It must never contain an embedded newline.
type Text struct {
	S string
}

func (t Text) Width() int  { return len(t.S) }
func (Text) isDocument()   {}

// Cond is a conditional break point. If the enclosing Group fits on
// one line, Small is rendered. If the group breaks, Tail is rendered,
// followed by a newline and indentation, followed by Cont.
type Cond struct {
	Small, Cont, Tail string
}

func (c Cond) Width() int { return len(c.Small) }
func (Cond) isDocument()  {}

// Concat is sequential composition of zero or more children.
type Concat struct {
	Children []Document
}

func (c Concat) Width() int {
	w := 0
	for _, child := range c.Children {
		w += child.Width()
	}
	return w
}
func (Concat) isDocument() {}

// Group is a unit of fit-or-break decision: either every Cond inside
// it renders its Small form, or every one of them breaks.
type Group struct {
	Child Document
}

func (g Group) Width() int { return g.Child.Width() }
func (Group) isDocument()  {}

// Nest is an indentation scope. A break occurring inside it indents
// its continuation to the horizontal column at which the Nest began.
type Nest struct {
	Child Document
}

func (n Nest) Width() int { return n.Child.Width() }
func (Nest) isDocument()  {}

// Distinguished document constants.
var (
	// empty renders as nothing.
	empty Document = Text{S: ""}
	// br is a break that renders as a single space when its group
	// fits, or a plain line break when it doesn't.
	br Document = Cond{Small: " ", Cont: "", Tail: ""}
	// dot is a break-capable ".", used by DottedList for every
	// separator after the first.
	dot Document = Cond{Small: ".", Cont: ".", Tail: ""}
)

// Empty returns the document that renders as nothing.
func Empty() Document { return empty }

// Br returns the standard space-or-break document.
func Br() Document { return br }

// Dot returns the standard break-capable "." separator.
func Dot() Document { return dot }

// NewText builds a Text document. s must not contain a newline.
func NewText(s string) Document { return Text{S: s} }

// NewCond builds a conditional break. All three strings are required;
// callers that only care about small/cont pass "" for tail.
func NewCond(small, cont, tail string) Document {
	return Cond{Small: small, Cont: cont, Tail: tail}
}

// NewConcat builds a sequential composition of children.
func NewConcat(children ...Document) Document {
	return Concat{Children: children}
}

// NewGroup wraps a single child in a fit-or-break decision.
func NewGroup(child Document) Document {
	return Group{Child: child}
}

// NewNest wraps a single child in an indentation scope.
func NewNest(child Document) Document {
	return Nest{Child: child}
}
