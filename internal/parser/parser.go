package parser

import (
	"github.com/ludo-technologies/csim/internal/scanner"
)

// Parser is a cursor over a random-access token buffer. Construct-specific
// parse methods advance the cursor and return the node they produced.
type Parser struct {
	toks []scanner.Token
	pos  int
}

// NewParser creates a parser over the given token buffer.
func NewParser(toks []scanner.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse builds a program tree from the token buffer.
func Parse(toks []scanner.Token) *Node {
	return NewParser(toks).Parse()
}

// Parse consumes the whole buffer and returns the program node. Top-level
// constructs that look like function definitions are parsed as functions,
// everything else as statements. A parse attempt that produces nothing
// forces one token to be consumed so the loop always terminates.
func (p *Parser) Parse() *Node {
	root := NewNode(KindProgram, "")

	for !p.eof() {
		before := p.pos

		if p.looksLikeFunction() {
			root.AddChild(p.parseFunction())
		} else {
			root.AddChild(p.parseStatement())
		}

		// A stray closing brace parses to an empty statement without
		// consuming anything; skip one token so the loop keeps moving.
		if p.pos == before {
			p.consume()
		}
	}
	return root
}

func (p *Parser) cur() scanner.Token {
	if p.pos >= len(p.toks) {
		return scanner.Token{}
	}
	return p.toks[p.pos]
}

func (p *Parser) eof() bool {
	return p.cur().Type == scanner.TokenEOF
}

// consume returns the current token and advances, unless at end of input.
func (p *Parser) consume() scanner.Token {
	t := p.cur()
	if t.Type != scanner.TokenEOF {
		p.pos++
	}
	return t
}

// keywordLabel maps control keywords to their own label; all type keywords
// collapse to "KW" so declarations with different types still compare equal.
func keywordLabel(kw scanner.Keyword) string {
	switch kw {
	case scanner.KwIf:
		return "IF"
	case scanner.KwElse:
		return "ELSE"
	case scanner.KwFor:
		return "FOR"
	case scanner.KwWhile:
		return "WHILE"
	case scanner.KwDo:
		return "DO"
	case scanner.KwSwitch:
		return "SWITCH"
	case scanner.KwCase:
		return "CASE"
	case scanner.KwDefault:
		return "DEFAULT"
	case scanner.KwBreak:
		return "BREAK"
	case scanner.KwContinue:
		return "CONTINUE"
	case scanner.KwReturn:
		return "RETURN"
	default:
		return "KW"
	}
}

func leafLabel(t scanner.Token) string {
	switch t.Type {
	case scanner.TokenKeyword:
		return keywordLabel(t.Kw)
	case scanner.TokenIdent:
		return t.Text
	case scanner.TokenNumber:
		return "NUM"
	case scanner.TokenString:
		return "STR"
	case scanner.TokenChar:
		return "CHR"
	case scanner.TokenOperator, scanner.TokenPunct:
		return t.Text
	default:
		return "TOK"
	}
}

func leaf(t scanner.Token) *Node {
	return NewNode(KindToken, leafLabel(t))
}

// parseParenExpr captures a parenthesized header into an expression bag.
// Nested parentheses are depth-tracked so only the outermost closing paren
// ends the capture; the boundary pair itself is not kept as a leaf.
func (p *Parser) parseParenExpr() *Node {
	if !p.cur().IsPunct("(") {
		return nil
	}
	p.consume() // '('

	expr := NewNode(KindExpr, "")
	depth := 1
	for !p.eof() && depth > 0 {
		t := p.consume()
		if t.IsPunct("(") {
			depth++
		} else if t.IsPunct(")") {
			depth--
			if depth == 0 {
				break
			}
		}
		expr.AddChild(leaf(t))
	}
	return expr
}

// parseUntilSemicolon collects tokens into a node of the given kind until a
// top-level semicolon (consumed) or a brace boundary (left in place).
// Parenthesis and bracket nesting is tracked so separators inside argument
// lists or subscripts do not end the run early.
func (p *Parser) parseUntilSemicolon(kind NodeKind) *Node {
	st := NewNode(kind, "")

	par, brk := 0, 0
	for !p.eof() {
		t := p.cur()

		if t.IsPunct("(") {
			par++
		} else if t.IsPunct(")") && par > 0 {
			par--
		}
		if t.IsPunct("[") {
			brk++
		} else if t.IsPunct("]") && brk > 0 {
			brk--
		}

		if par == 0 && brk == 0 {
			if t.IsPunct(";") {
				p.consume()
				break
			}
			if t.IsPunct("{") || t.IsPunct("}") {
				break
			}
		}

		p.consume()
		st.AddChild(leaf(t))
	}
	return st
}

func (p *Parser) parseIf() *Node {
	p.consume() // 'if'
	n := NewNode(KindIf, "")

	n.AddChild(p.parseParenExpr())
	n.AddChild(p.parseStatement())

	if p.cur().IsKw(scanner.KwElse) {
		p.consume()
		elseNode := NewNode(KindBlock, "ELSE")
		elseNode.AddChild(p.parseStatement())
		n.AddChild(elseNode)
	}
	return n
}

func (p *Parser) parseFor() *Node {
	p.consume() // 'for'
	n := NewNode(KindFor, "")
	n.AddChild(p.parseParenExpr())
	n.AddChild(p.parseStatement())
	return n
}

func (p *Parser) parseWhile() *Node {
	p.consume() // 'while'
	n := NewNode(KindWhile, "")
	n.AddChild(p.parseParenExpr())
	n.AddChild(p.parseStatement())
	return n
}

func (p *Parser) parseDoWhile() *Node {
	p.consume() // 'do'
	n := NewNode(KindDoWhile, "")

	n.AddChild(p.parseStatement())

	if p.cur().IsKw(scanner.KwWhile) {
		p.consume()
		n.AddChild(p.parseParenExpr())
		if p.cur().IsPunct(";") {
			p.consume()
		}
	}
	return n
}

func (p *Parser) parseSwitch() *Node {
	p.consume() // 'switch'
	n := NewNode(KindSwitch, "")
	n.AddChild(p.parseParenExpr())
	n.AddChild(p.parseStatement())
	return n
}

func (p *Parser) parseCase() *Node {
	p.consume() // 'case'
	n := NewNode(KindCase, "")

	expr := NewNode(KindExpr, "")
	for !p.eof() && !p.cur().IsPunct(":") && !p.cur().IsPunct("{") && !p.cur().IsPunct("}") {
		expr.AddChild(leaf(p.consume()))
	}
	if p.cur().IsPunct(":") {
		p.consume()
	}
	n.AddChild(expr)

	body := NewNode(KindBlock, "CASE BODY")
	for !p.eof() && !p.cur().IsKw(scanner.KwCase) && !p.cur().IsKw(scanner.KwDefault) && !p.cur().IsPunct("}") {
		before := p.pos
		body.AddChild(p.parseStatement())
		if p.pos == before {
			p.consume()
		}
	}
	n.AddChild(body)
	return n
}

func (p *Parser) parseDefault() *Node {
	p.consume() // 'default'
	n := NewNode(KindDefault, "")
	if p.cur().IsPunct(":") {
		p.consume()
	}

	body := NewNode(KindBlock, "DEFAULT BODY")
	for !p.eof() && !p.cur().IsKw(scanner.KwCase) && !p.cur().IsKw(scanner.KwDefault) && !p.cur().IsPunct("}") {
		before := p.pos
		body.AddChild(p.parseStatement())
		if p.pos == before {
			p.consume()
		}
	}
	n.AddChild(body)
	return n
}

func (p *Parser) parseReturn() *Node {
	p.consume() // 'return'
	n := NewNode(KindReturn, "")
	n.AddChild(p.parseUntilSemicolon(KindExpr))
	return n
}

func (p *Parser) parseBreak() *Node {
	p.consume() // 'break'
	n := NewNode(KindBreak, "")
	if p.cur().IsPunct(";") {
		p.consume()
	}
	return n
}

func (p *Parser) parseContinue() *Node {
	p.consume() // 'continue'
	n := NewNode(KindContinue, "")
	if p.cur().IsPunct(";") {
		p.consume()
	}
	return n
}

func (p *Parser) parseBlock() *Node {
	if !p.cur().IsPunct("{") {
		return nil
	}
	p.consume() // '{'

	b := NewNode(KindBlock, "")
	for !p.eof() && !p.cur().IsPunct("}") {
		before := p.pos
		b.AddChild(p.parseStatement())
		if p.pos == before {
			p.consume()
		}
	}

	if p.cur().IsPunct("}") {
		p.consume() // '}'
	}
	return b
}

func (p *Parser) parseStatement() *Node {
	t := p.cur()
	if t.Type == scanner.TokenEOF {
		return nil
	}

	if t.IsPunct("{") {
		return p.parseBlock()
	}

	switch {
	case t.IsKw(scanner.KwIf):
		return p.parseIf()
	case t.IsKw(scanner.KwFor):
		return p.parseFor()
	case t.IsKw(scanner.KwWhile):
		return p.parseWhile()
	case t.IsKw(scanner.KwDo):
		return p.parseDoWhile()
	case t.IsKw(scanner.KwSwitch):
		return p.parseSwitch()
	case t.IsKw(scanner.KwCase):
		return p.parseCase()
	case t.IsKw(scanner.KwDefault):
		return p.parseDefault()
	case t.IsKw(scanner.KwReturn):
		return p.parseReturn()
	case t.IsKw(scanner.KwBreak):
		return p.parseBreak()
	case t.IsKw(scanner.KwContinue):
		return p.parseContinue()
	}

	return p.parseUntilSemicolon(KindStmt)
}

// looksLikeFunction probes forward for the shape `... ( ... ) ... {` with no
// top-level semicolon before it. This syntactic check separates function
// definitions from declarations and expressions without a symbol table.
func (p *Parser) looksLikeFunction() bool {
	i := p.pos
	par := 0
	sawOpen, sawClose := false, false

	for i < len(p.toks) {
		t := p.toks[i]
		if t.Type == scanner.TokenEOF {
			return false
		}

		if par == 0 && t.IsPunct(";") {
			return false
		}

		if t.IsPunct("(") {
			par++
			sawOpen = true
		} else if t.IsPunct(")") {
			if par > 0 {
				par--
			}
			if par == 0 && sawOpen {
				sawClose = true
			}
		} else if par == 0 && t.IsPunct("{") {
			return sawOpen && sawClose
		}
		i++
	}
	return false
}

// parseFunction collects the header tokens verbatim up to the opening brace,
// then parses the body block.
func (p *Parser) parseFunction() *Node {
	fn := NewNode(KindFunction, "")

	header := NewNode(KindStmt, "FUNC_HEADER")
	for !p.eof() && !p.cur().IsPunct("{") {
		header.AddChild(leaf(p.consume()))
	}
	fn.AddChild(header)

	fn.AddChild(p.parseBlock())
	return fn
}
