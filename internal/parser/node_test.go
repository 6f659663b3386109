package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindProgram, "PROGRAM"},
		{KindFunction, "FUNCTION"},
		{KindBlock, "BLOCK"},
		{KindIf, "IF"},
		{KindFor, "FOR"},
		{KindWhile, "WHILE"},
		{KindDoWhile, "DO_WHILE"},
		{KindSwitch, "SWITCH"},
		{KindCase, "CASE"},
		{KindDefault, "DEFAULT"},
		{KindReturn, "RETURN"},
		{KindBreak, "BREAK"},
		{KindContinue, "CONTINUE"},
		{KindStmt, "STMT"},
		{KindExpr, "EXPR"},
		{KindToken, "TOKEN"},
		{NodeKind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestNodeAddChild(t *testing.T) {
	root := NewNode(KindProgram, "")
	root.AddChild(NewNode(KindStmt, ""))
	root.AddChild(nil)
	root.AddChild(NewNode(KindBlock, ""))

	assert.Len(t, root.Children, 2, "nil children are dropped")
}

func TestNodeIsLeaf(t *testing.T) {
	leaf := NewNode(KindToken, "NUM")
	assert.True(t, leaf.IsLeaf())

	parent := NewNode(KindExpr, "")
	parent.AddChild(leaf)
	assert.False(t, parent.IsLeaf())
}

func TestNodeCount(t *testing.T) {
	var nilNode *Node
	assert.Equal(t, 0, nilNode.Count())

	root := NewNode(KindProgram, "")
	assert.Equal(t, 1, root.Count())

	stmt := NewNode(KindStmt, "")
	stmt.AddChild(NewNode(KindToken, "var_0"))
	stmt.AddChild(NewNode(KindToken, "NUM"))
	root.AddChild(stmt)

	assert.Equal(t, 4, root.Count())
}
