package http

import (
	"encoding/json"
	"fmt"

	"github.com/oppenprint/docpress/pretty"
)

// docNode is the wire shape of a document-algebra JSON tree:
//
//	{"kind":"text","s":"hello"}
//	{"kind":"cond","small":" ","cont":"","tail":""}
//	{"kind":"concat","children":[...]}
//	{"kind":"group","child":{...}}
//	{"kind":"nest","child":{...}}
//	{"kind":"empty"} / {"kind":"br"} / {"kind":"dot"}
type docNode struct {
	Kind     string    `json:"kind"`
	S        string    `json:"s,omitempty"`
	Small    string    `json:"small,omitempty"`
	Cont     string    `json:"cont,omitempty"`
	Tail     string    `json:"tail,omitempty"`
	Children []docNode `json:"children,omitempty"`
	Child    *docNode  `json:"child,omitempty"`
}

// DecodeDocument is the only place this service touches encoding/json
// on the way into the engine.
func DecodeDocument(raw []byte) (pretty.Document, error) {
	var node docNode
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return nodeToDocument(node)
}

func nodeToDocument(n docNode) (pretty.Document, error) {
	switch n.Kind {
	case "empty":
		return pretty.Empty(), nil
	case "br":
		return pretty.Br(), nil
	case "dot":
		return pretty.Dot(), nil
	case "text":
		return pretty.NewText(n.S), nil
	case "cond":
		return pretty.NewCond(n.Small, n.Cont, n.Tail), nil
	case "concat":
		children := make([]pretty.Document, len(n.Children))
		for i, c := range n.Children {
			child, err := nodeToDocument(c)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return pretty.NewConcat(children...), nil
	case "group":
		if n.Child == nil {
			return nil, fmt.Errorf("group node missing child")
		}
		child, err := nodeToDocument(*n.Child)
		if err != nil {
			return nil, err
		}
		return pretty.NewGroup(child), nil
	case "nest":
		if n.Child == nil {
			return nil, fmt.Errorf("nest node missing child")
		}
		child, err := nodeToDocument(*n.Child)
		if err != nil {
			return nil, err
		}
		return pretty.NewNest(child), nil
	default:
		return nil, fmt.Errorf("unknown document node kind %q", n.Kind)
	}
}
