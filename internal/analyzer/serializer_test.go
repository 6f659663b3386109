package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/csim/internal/parser"
	"github.com/ludo-technologies/csim/internal/scanner"
)

func sequenceOf(t *testing.T, src string) []string {
	t.Helper()
	tree := parser.Parse(scanner.New([]byte(src)).ScanAll())
	seq, err := Serialize(tree)
	require.NoError(t, err)
	return seq
}

func TestSerializeNilRoot(t *testing.T) {
	seq, err := Serialize(nil)
	assert.ErrorIs(t, err, ErrNilRoot)
	assert.Nil(t, seq)
}

func TestSerializeEmptyProgram(t *testing.T) {
	seq, err := Serialize(parser.Parse(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"<PROGRAM>", "</PROGRAM>"}, seq)
}

func TestSerializeSingleStatement(t *testing.T) {
	want := []string{
		"<PROGRAM>",
		"<STMT>",
		"<TOKEN>", "var_0", "</TOKEN>",
		"</STMT>",
		"</PROGRAM>",
	}
	assert.Equal(t, want, sequenceOf(t, "x;"))
}

func TestSerializeBareReturn(t *testing.T) {
	want := []string{
		"<PROGRAM>",
		"<RETURN>",
		"<EXPR>", "</EXPR>",
		"</RETURN>",
		"</PROGRAM>",
	}
	assert.Equal(t, want, sequenceOf(t, "return;"))
}

func TestSerializeFunction(t *testing.T) {
	want := []string{
		"<PROGRAM>",
		"<FUNCTION>",
		"<STMT>",
		"<TOKEN>", "KW", "</TOKEN>",
		"<TOKEN>", "var_0", "</TOKEN>",
		"<TOKEN>", "(", "</TOKEN>",
		"<TOKEN>", ")", "</TOKEN>",
		"</STMT>",
		"<BLOCK>", "</BLOCK>",
		"</FUNCTION>",
		"</PROGRAM>",
	}
	assert.Equal(t, want, sequenceOf(t, "int f() { }"))
}

func TestSerializeOmitsMarkerTexts(t *testing.T) {
	seq := sequenceOf(t, "int f() { if (x) { } else { } }")

	assert.NotContains(t, seq, "FUNC_HEADER")
	assert.NotContains(t, seq, "ELSE")
	assert.Contains(t, seq, "<BLOCK>")
}

func TestSerializeLeavesTreeUnchanged(t *testing.T) {
	tree := parser.Parse(scanner.New([]byte("int f(int n) { if (n < 2) { return n; } return f(n - 1); }")).ScanAll())

	first, err := Serialize(tree)
	require.NoError(t, err)
	second, err := Serialize(tree)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSerializeBalancedTags(t *testing.T) {
	// The source avoids '<' operators so every element starting with '<'
	// is a structural tag.
	seq := sequenceOf(t, "int f(int n) { while (n > 0) { n--; } return n; }")

	depth := 0
	opens := map[string]int{}
	closes := map[string]int{}
	for _, el := range seq {
		switch {
		case len(el) > 2 && el[0] == '<' && el[1] == '/':
			closes[el[2:len(el)-1]]++
			depth--
			assert.GreaterOrEqual(t, depth, 0)
		case len(el) > 1 && el[0] == '<':
			opens[el[1:len(el)-1]]++
			depth++
		}
	}
	assert.Equal(t, 0, depth)
	assert.Equal(t, opens, closes)
}
