package scanner

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	// TokenEOF is the end marker emitted exactly once when input is exhausted.
	// It is the zero value so an uninitialized Token reads as end of input.
	TokenEOF TokenType = iota
	TokenKeyword
	TokenIdent
	TokenNumber
	TokenString
	TokenChar
	TokenOperator
	TokenPunct
)

// String returns a short name for the token type, used in diagnostics.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenKeyword:
		return "KEYWORD"
	case TokenIdent:
		return "IDENT"
	case TokenNumber:
		return "NUMBER"
	case TokenString:
		return "STRING"
	case TokenChar:
		return "CHAR"
	case TokenOperator:
		return "OPERATOR"
	case TokenPunct:
		return "PUNCT"
	default:
		return "UNKNOWN"
	}
}

// Keyword identifies which reserved word a keyword token carries.
// It is KwNone for every non-keyword token.
type Keyword int

const (
	KwNone Keyword = iota
	KwIf
	KwElse
	KwFor
	KwWhile
	KwDo
	KwSwitch
	KwCase
	KwDefault
	KwReturn
	KwBreak
	KwContinue
	KwInt
	KwChar
	KwFloat
	KwDouble
	KwVoid
	KwStruct
	KwTypedef
)

// keywords maps reserved words to their keyword tag. Any identifier not
// listed here is anonymized to a positional var_N placeholder.
var keywords = map[string]Keyword{
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"do":       KwDo,
	"switch":   KwSwitch,
	"case":     KwCase,
	"default":  KwDefault,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"int":      KwInt,
	"char":     KwChar,
	"float":    KwFloat,
	"double":   KwDouble,
	"void":     KwVoid,
	"struct":   KwStruct,
	"typedef":  KwTypedef,
}

// Token is a single normalized lexical unit.
//
// Raw holds the exact source text; Text holds the normalized form used for
// structural comparison (var_N for identifiers, NUM/STR/CHAR for literals,
// the literal text for keywords, operators, and punctuation).
type Token struct {
	Type TokenType
	Kw   Keyword
	Raw  string
	Text string
	Line int
	Col  int
}

// IsKw reports whether the token is the given keyword.
func (t Token) IsKw(kw Keyword) bool {
	return t.Type == TokenKeyword && t.Kw == kw
}

// IsPunct reports whether the token is the given punctuation character.
func (t Token) IsPunct(s string) bool {
	return t.Type == TokenPunct && t.Text == s
}

// IsOp reports whether the token is the given operator.
func (t Token) IsOp(s string) bool {
	return t.Type == TokenOperator && t.Text == s
}
