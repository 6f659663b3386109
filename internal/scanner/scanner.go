// Package scanner turns raw source text into a normalized token sequence.
//
// The scanner consumes input strictly left to right and never backtracks.
// Identifiers are anonymized by position of occurrence, literals collapse to
// fixed placeholders, and unknown bytes are skipped silently, so two sources
// that differ only in naming or literal values scan to identical normalized
// sequences.
//
// Basic usage:
//
//	s := scanner.New(source)
//	for {
//		tok := s.Next()
//		if tok.Type == scanner.TokenEOF {
//			break
//		}
//		// use tok
//	}
package scanner

import "fmt"

// Scanner is a single-pass lexer over a byte slice. A Scanner is not
// restartable; create a new one per input.
type Scanner struct {
	src      []byte
	pos      int
	line     int
	col      int
	identSeq int
}

// New creates a scanner positioned at the start of src.
func New(src []byte) *Scanner {
	return &Scanner{
		src:  src,
		line: 1,
		col:  1,
	}
}

// Next returns the next token. After the input is exhausted it returns the
// end marker; calling Next again keeps returning the end marker.
func (s *Scanner) Next() Token {
	for {
		s.skipSpaceAndComments()

		if s.pos >= len(s.src) {
			return Token{Type: TokenEOF, Line: s.line, Col: s.col}
		}

		c := s.src[s.pos]
		switch {
		case isIdentStart(c):
			return s.scanIdent()
		case isDigit(c):
			return s.scanNumber()
		case c == '"':
			return s.scanString()
		case c == '\'':
			return s.scanChar()
		case isOperatorStart(c):
			return s.scanOperator()
		case isPunctChar(c):
			return s.scanPunct()
		default:
			// Stray byte: skip it and try again.
			s.pos++
			s.col++
		}
	}
}

// ScanAll drains the scanner and returns every token before the end marker.
func (s *Scanner) ScanAll() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// skipSpaceAndComments advances past whitespace, line comments, and block
// comments, keeping the line/column counters in sync.
func (s *Scanner) skipSpaceAndComments() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case isSpace(c):
			if c == '\n' {
				s.line++
				s.col = 1
			} else {
				s.col++
			}
			s.pos++
		case c == '/' && s.at(1) == '/':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
				s.col++
			}
		case c == '/' && s.at(1) == '*':
			s.pos += 2
			s.col += 2
			for s.pos < len(s.src) {
				if s.src[s.pos] == '*' && s.at(1) == '/' {
					s.pos += 2
					s.col += 2
					break
				}
				if s.src[s.pos] == '\n' {
					s.line++
					s.col = 1
				} else {
					s.col++
				}
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *Scanner) scanIdent() Token {
	line, col := s.line, s.col
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
		s.col++
	}
	word := string(s.src[start:s.pos])

	if kw, ok := keywords[word]; ok {
		return Token{Type: TokenKeyword, Kw: kw, Raw: word, Text: word, Line: line, Col: col}
	}

	// Every identifier occurrence gets a fresh placeholder; the counter is
	// positional, never interned by name.
	text := fmt.Sprintf("var_%d", s.identSeq)
	s.identSeq++
	return Token{Type: TokenIdent, Raw: word, Text: text, Line: line, Col: col}
}

func (s *Scanner) scanNumber() Token {
	line, col := s.line, s.col
	start := s.pos

	if s.at(0) == '0' && (s.at(1) == 'x' || s.at(1) == 'X') {
		s.pos += 2
		s.col += 2
		for isHexDigit(s.at(0)) {
			s.pos++
			s.col++
		}
	} else {
		for isDigit(s.at(0)) {
			s.pos++
			s.col++
		}
		if s.at(0) == '.' {
			s.pos++
			s.col++
			for isDigit(s.at(0)) {
				s.pos++
				s.col++
			}
		}
		if s.at(0) == 'e' || s.at(0) == 'E' {
			s.pos++
			s.col++
			if s.at(0) == '+' || s.at(0) == '-' {
				s.pos++
				s.col++
			}
			for isDigit(s.at(0)) {
				s.pos++
				s.col++
			}
		}
	}

	for isNumSuffix(s.at(0)) {
		s.pos++
		s.col++
	}

	return Token{Type: TokenNumber, Raw: string(s.src[start:s.pos]), Text: "NUM", Line: line, Col: col}
}

func (s *Scanner) scanString() Token {
	line, col := s.line, s.col
	start := s.pos

	s.pos++ // opening quote
	s.col++

	for s.pos < len(s.src) && s.src[s.pos] != '"' {
		if s.src[s.pos] == '\\' {
			s.pos++
			s.col++
			if s.pos < len(s.src) {
				s.pos++
				s.col++
			}
		} else {
			if s.src[s.pos] == '\n' {
				s.line++
				s.col = 1
			} else {
				s.col++
			}
			s.pos++
		}
	}

	// An unterminated string consumes the rest of the input; the raw text
	// keeps whatever was present, including the quotes when both exist.
	if s.pos < len(s.src) {
		s.pos++ // closing quote
		s.col++
	}

	return Token{Type: TokenString, Raw: string(s.src[start:s.pos]), Text: "STR", Line: line, Col: col}
}

func (s *Scanner) scanChar() Token {
	line, col := s.line, s.col
	start := s.pos

	s.pos++ // opening quote
	s.col++

	if s.at(0) == '\\' {
		s.pos++
		s.col++
	}
	if s.pos < len(s.src) {
		s.pos++
		s.col++
	}
	if s.at(0) == '\'' {
		s.pos++
		s.col++
	}

	return Token{Type: TokenChar, Raw: string(s.src[start:s.pos]), Text: "CHAR", Line: line, Col: col}
}

func (s *Scanner) scanOperator() Token {
	line, col := s.line, s.col
	start := s.pos

	c := s.src[s.pos]
	s.pos++
	s.col++

	if isCompoundOp(c, s.at(0)) {
		s.pos++
		s.col++
	}

	op := string(s.src[start:s.pos])
	return Token{Type: TokenOperator, Raw: op, Text: op, Line: line, Col: col}
}

func (s *Scanner) scanPunct() Token {
	line, col := s.line, s.col
	p := string(s.src[s.pos])
	s.pos++
	s.col++
	return Token{Type: TokenPunct, Raw: p, Text: p, Line: line, Col: col}
}

// at returns the byte at the given offset from the current position, or 0
// past the end of input.
func (s *Scanner) at(offset int) byte {
	i := s.pos + offset
	if i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

// isCompoundOp reports whether first followed by second forms one of the
// recognized two-character operators.
func isCompoundOp(first, second byte) bool {
	switch first {
	case '=', '!', '*', '/', '%':
		return second == '='
	case '<':
		return second == '=' || second == '<'
	case '>':
		return second == '=' || second == '>'
	case '&':
		return second == '&'
	case '|':
		return second == '|'
	case '+':
		return second == '+' || second == '='
	case '-':
		return second == '-' || second == '=' || second == '>'
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isNumSuffix(c byte) bool {
	switch c {
	case 'L', 'l', 'U', 'u', 'F', 'f':
		return true
	}
	return false
}

func isOperatorStart(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~':
		return true
	}
	return false
}

func isPunctChar(c byte) bool {
	switch c {
	case '(', ')', '{', '}', '[', ']', ';', ',', '.':
		return true
	}
	return false
}
