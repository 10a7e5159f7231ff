package pretty

import (
	"strings"
	"testing"
)

func text(s string) Document { return NewText(s) }

func TestPrintScenarios(t *testing.T) {
	cases := []struct {
		name  string
		width uint
		doc   Document
		want  string
	}{
		{
			name:  "S1 funcall fits",
			width: 80,
			doc:   FuncCall("f", []Document{text("a"), text("b")}),
			want:  "f(a, b)",
		},
		{
			name:  "S2 funcall breaks",
			width: 3,
			doc:   FuncCall("f", []Document{text("a"), text("b")}),
			want:  "f(a,\n  b)",
		},
		{
			name:  "S3 dotted list fits",
			width: 80,
			doc:   DottedList([]Document{text("a"), text("b"), text("c")}),
			want:  "a.b.c",
		},
		{
			name:  "S4 dotted list breaks at second dot",
			width: 3,
			doc:   DottedList([]Document{text("a"), text("b"), text("c")}),
			want:  "a.b\n .c",
		},
		{
			name:  "S5 bracketed group fits",
			width: 80,
			doc: NewGroup(NewConcat(
				text("["),
				NewNest(NewConcat(text("x"), Br(), text("y"))),
				text("]"),
			)),
			want: "[x y]",
		},
		{
			// The nest's indentation column is the position of its
			// first character ("x"), so the broken continuation lines
			// up one column in, under "x": this keeps every line
			// within the page width, unlike a two-column indent here
			// which would push the closing line one column past it.
			name:  "S5 bracketed group breaks",
			width: 3,
			doc: NewGroup(NewConcat(
				text("["),
				NewNest(NewConcat(text("x"), Br(), text("y"))),
				text("]"),
			)),
			want: "[x\n y]",
		},
		{
			name:  "S6 empty text",
			width: 80,
			doc:   text(""),
			want:  "",
		},
		{
			name:  "S6 empty text at width zero",
			width: 0,
			doc:   text(""),
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Print(tc.width, tc.doc)
			if got != tc.want {
				t.Errorf("Print(%d, ...) = %q, want %q", tc.width, got, tc.want)
			}
		})
	}
}

func TestPrintWidthZeroForcesEveryBreak(t *testing.T) {
	doc := NewGroup(NewConcat(text("a"), Br(), text("b"), Br(), text("c")))
	got := Print(0, doc)
	want := "a\nb\nc"
	if got != want {
		t.Errorf("Print(0, ...) = %q, want %q", got, want)
	}
}

func TestPrintNoPanicOnZeroWidth(t *testing.T) {
	doc := NewGroup(NewNest(NewConcat(text("x"), Br(), text("y"))))
	_ = Print(0, doc)
}

func TestPrintWidthMonotonicityDoesNotIntroduceExtraBreaks(t *testing.T) {
	doc := FuncCall("f", []Document{text("aaaa"), text("bbbb"), text("cccc")})
	narrow := Print(6, doc)
	wide := Print(200, doc)

	narrowBreaks := strings.Count(narrow, "\n")
	wideBreaks := strings.Count(wide, "\n")

	if wideBreaks > narrowBreaks {
		t.Errorf("wider page produced more breaks: narrow=%d wide=%d", narrowBreaks, wideBreaks)
	}
	if wideBreaks != 0 {
		t.Errorf("page wide enough to fit everything still broke: %q", wide)
	}
}

func TestPrintIdempotentWhenAlreadyFits(t *testing.T) {
	doc := FuncCall("f", []Document{text("a"), text("b")})
	first := Print(80, doc)
	second := Print(80, NewConcat(text(first)))
	if first != second {
		t.Errorf("re-render of a fitting line changed: %q != %q", first, second)
	}
}

func TestPrintEmptyDocumentTolerance(t *testing.T) {
	doc := NewGroup(NewConcat(
		NewCond("", "", ""),
		text(""),
		NewNest(text("")),
	))
	got := Print(10, doc)
	if got != "" {
		t.Errorf("Print of an all-empty document = %q, want empty", got)
	}
}

func TestSurfaceConstructorsEmptyAndSingleton(t *testing.T) {
	if got := Print(80, CommaSeparated(nil)); got != "" {
		t.Errorf("CommaSeparated(nil) rendered %q, want empty", got)
	}
	if got := Print(80, DottedList(nil)); got != "" {
		t.Errorf("DottedList(nil) rendered %q, want empty", got)
	}
	if got := Print(80, DottedList([]Document{text("a")})); got != "a" {
		t.Errorf("DottedList([a]) rendered %q, want %q", got, "a")
	}
}

func TestStreamStagesBalanceGroupsAndNests(t *testing.T) {
	doc := NewGroup(NewConcat(
		text("a"),
		NewNest(NewConcat(text("b"), Br(), NewGroup(NewConcat(text("c"), Dot(), text("d"))))),
		text("e"),
	))

	checkBalance := func(stage string, push func(func(element))) {
		var opens, closes, nopens, ncloses int
		push(func(e element) {
			switch e.(type) {
			case *groupBeginElem:
				opens++
			case *groupEndElem:
				closes++
			case *nestBeginElem:
				nopens++
			case *nestEndElem:
				ncloses++
			}
		})
		if opens != closes {
			t.Errorf("%s: groupBegin=%d groupEnd=%d, want equal", stage, opens, closes)
		}
		if nopens != ncloses {
			t.Errorf("%s: nestBegin=%d nestEnd=%d, want equal", stage, nopens, ncloses)
		}
	}

	checkBalance("linearizer", func(sink func(element)) {
		linearize(doc, sink)
	})

	checkBalance("annotator", func(sink func(element)) {
		a := newAnnotator(sink)
		linearize(doc, a.push)
	})

	checkBalance("corrector", func(sink func(element)) {
		c := newCorrector(sink)
		a := newAnnotator(c.push)
		linearize(doc, a.push)
	})
}

func TestAnnotatorPositionIsMonotoneAndMatchesConsumedLength(t *testing.T) {
	doc := NewGroup(NewConcat(text("abc"), Br(), text("de"), NewNest(NewConcat(text("f"), Dot(), text("gh")))))

	var last int
	var consumed int
	a := newAnnotator(func(e element) {
		switch v := e.(type) {
		case *textElem:
			consumed += len(v.payload)
			if v.hpos == nil || *v.hpos < last {
				t.Fatalf("textElem hpos not monotone: %v", v.hpos)
			}
			if *v.hpos != consumed {
				t.Fatalf("textElem hpos = %d, want %d", *v.hpos, consumed)
			}
			last = *v.hpos
		case *condElem:
			consumed += len(v.small)
			if v.hpos == nil || *v.hpos < last {
				t.Fatalf("condElem hpos not monotone: %v", v.hpos)
			}
			if *v.hpos != consumed {
				t.Fatalf("condElem hpos = %d, want %d", *v.hpos, consumed)
			}
			last = *v.hpos
		}
	})
	linearize(doc, a.push)
}

func TestWidthIsFlatAndIgnoresBreakState(t *testing.T) {
	doc := NewConcat(text("ab"), NewCond("x", "yy", "z"))
	if w := doc.Width(); w != 3 { // len("ab") + len("x")
		t.Errorf("Width() = %d, want 3", w)
	}
}
