package analyzer

import (
	"errors"

	"github.com/ludo-technologies/csim/internal/parser"
)

// ErrNilRoot is returned when serialization is asked for a missing tree.
var ErrNilRoot = errors.New("cannot serialize nil tree")

// Serialize flattens a tree into its preorder element sequence. Every node
// contributes an opening and a closing element named after its kind, and
// token leaves additionally contribute their normalized label between the
// two. Marker texts on structural nodes are not emitted, so two trees with
// the same shape and leaf labels serialize identically.
func Serialize(root *parser.Node) ([]string, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	return appendNode(make([]string, 0, root.Count()*2), root), nil
}

func appendNode(seq []string, n *parser.Node) []string {
	if n == nil {
		return seq
	}

	kind := n.Kind.String()
	seq = append(seq, "<"+kind+">")
	if n.Kind == parser.KindToken && n.Text != "" {
		seq = append(seq, n.Text)
	}
	for _, c := range n.Children {
		seq = appendNode(seq, c)
	}
	return append(seq, "</"+kind+">")
}
