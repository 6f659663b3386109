package parser

// NodeKind tags the structural role of a tree node.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindFunction
	KindBlock
	KindIf
	KindFor
	KindWhile
	KindDoWhile
	KindSwitch
	KindCase
	KindDefault
	KindReturn
	KindBreak
	KindContinue
	KindStmt
	KindExpr
	KindToken
)

// String returns the canonical kind name used by the serializer.
func (k NodeKind) String() string {
	switch k {
	case KindProgram:
		return "PROGRAM"
	case KindFunction:
		return "FUNCTION"
	case KindBlock:
		return "BLOCK"
	case KindIf:
		return "IF"
	case KindFor:
		return "FOR"
	case KindWhile:
		return "WHILE"
	case KindDoWhile:
		return "DO_WHILE"
	case KindSwitch:
		return "SWITCH"
	case KindCase:
		return "CASE"
	case KindDefault:
		return "DEFAULT"
	case KindReturn:
		return "RETURN"
	case KindBreak:
		return "BREAK"
	case KindContinue:
		return "CONTINUE"
	case KindStmt:
		return "STMT"
	case KindExpr:
		return "EXPR"
	case KindToken:
		return "TOKEN"
	default:
		return "UNKNOWN"
	}
}

// Node is a structural tree node. Children are exclusively owned and kept in
// left-to-right syntactic order; there are no parent back references.
//
// Text is the leaf label for KindToken nodes. A few synthetic nodes carry a
// marker text (function headers, else arms, case bodies) that identifies them
// during debugging but is not emitted by the serializer.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
}

// NewNode creates a node with no children.
func NewNode(kind NodeKind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// AddChild appends a child, ignoring nil.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}
