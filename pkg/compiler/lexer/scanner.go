package lexer

import (
	"iter"
	"unicode"
)

// eof marks the cursor running past the last rune.
const eof rune = -1

// Scanner performs lexical analysis on nmonkey source.
// It walks the decoded rune sequence, so a multi-byte character is one unit.
type Scanner struct {
	input        []rune
	position     int // index of ch
	readPosition int // index of the rune after ch
	ch           rune

	line   int
	column int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	s := &Scanner{}
	s.Reset(source)
	return s
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source string) {
	s.input = s.input[:0]
	for _, r := range source {
		s.input = append(s.input, r)
	}
	s.position = 0
	s.readPosition = 0
	s.ch = 0
	s.line = 1
	s.column = 0
	s.readChar()
}

// Next returns the next token from the source. Once the input is exhausted
// every call returns an EOF token.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	line, column := s.line, s.column
	tok := func(kind Kind, literal string) Token {
		return Token{Kind: kind, Literal: literal, Line: line, Column: column}
	}

	var t Token
	switch s.ch {
	case eof:
		return tok(KindEOF, "")
	case '=':
		if s.peekChar() == '=' {
			s.readChar()
			t = tok(KindEQ, "==")
		} else {
			t = tok(KindAssign, "=")
		}
	case '!':
		if s.peekChar() == '=' {
			s.readChar()
			t = tok(KindNotEQ, "!=")
		} else {
			t = tok(KindBang, "!")
		}
	case '+':
		t = tok(KindPlus, "+")
	case '-':
		t = tok(KindMinus, "-")
	case '*':
		t = tok(KindAsterisk, "*")
	case '/':
		t = tok(KindSlash, "/")
	case '<':
		t = tok(KindLT, "<")
	case '>':
		t = tok(KindGT, ">")
	case ',':
		t = tok(KindComma, ",")
	case ';':
		t = tok(KindSemicolon, ";")
	case '(':
		t = tok(KindLParen, "(")
	case ')':
		t = tok(KindRParen, ")")
	case '{':
		t = tok(KindLBrace, "{")
	case '}':
		t = tok(KindRBrace, "}")
	default:
		// Identifiers and numbers leave the cursor on the first rune
		// after the run, so they return without the trailing readChar.
		if isLetter(s.ch) {
			literal := s.readIdentifier()
			return tok(LookupIdent(literal), literal)
		}
		if isDigit(s.ch) {
			return tok(KindInt, s.readNumber())
		}
		t = tok(KindIllegal, string(s.ch))
	}

	s.readChar()
	return t
}

// All returns the remaining tokens as a lazy sequence. The sequence ends
// after yielding a single EOF token.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := s.Next()
			if !yield(tok) || tok.Kind == KindEOF {
				return
			}
		}
	}
}

func (s *Scanner) readChar() {
	if s.ch == '\n' {
		s.line++
		s.column = 0
	}

	if s.readPosition >= len(s.input) {
		if s.ch != eof {
			s.column++
		}
		s.ch = eof
		s.position = len(s.input)
		return
	}

	s.ch = s.input[s.readPosition]
	s.position = s.readPosition
	s.readPosition++
	s.column++
}

func (s *Scanner) peekChar() rune {
	if s.readPosition >= len(s.input) {
		return eof
	}
	return s.input[s.readPosition]
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.readChar()
	}
}

func (s *Scanner) readIdentifier() string {
	start := s.position
	for isLetter(s.ch) {
		s.readChar()
	}
	return string(s.input[start:s.position])
}

func (s *Scanner) readNumber() string {
	start := s.position
	for isDigit(s.ch) {
		s.readChar()
	}
	return string(s.input[start:s.position])
}

func isLetter(ch rune) bool {
	return ch == '_' || (ch != eof && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
