package ast

// NodeType represents the type of an s-expression node
type NodeType uint8

// Node types
const (
	NodeTypeNil NodeType = iota
	NodeTypeAtom
	NodeTypePair
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNil:  "nil",
	NodeTypeAtom: "atom",
	NodeTypePair: "pair",
}

// TypeOf returns the node type of s, NodeTypeNil for the list terminator.
func TypeOf(s Sexp) NodeType {
	if s == nil {
		return NodeTypeNil
	}
	return s.Type()
}
