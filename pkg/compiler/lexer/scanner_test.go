package lexer_test

import (
	"strings"
	"testing"

	"github.com/agenthands/nmonkey/pkg/compiler/lexer"
)

type expectedToken struct {
	kind    lexer.Kind
	literal string
}

func TestScannerNextToken(t *testing.T) {
	src := `let five = 5;
let ten = 10;
let add = fn(x, y) {
  x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	expected := []expectedToken{
		{lexer.KindLet, "let"}, {lexer.KindIdent, "five"}, {lexer.KindAssign, "="}, {lexer.KindInt, "5"}, {lexer.KindSemicolon, ";"},
		{lexer.KindLet, "let"}, {lexer.KindIdent, "ten"}, {lexer.KindAssign, "="}, {lexer.KindInt, "10"}, {lexer.KindSemicolon, ";"},
		{lexer.KindLet, "let"}, {lexer.KindIdent, "add"}, {lexer.KindAssign, "="}, {lexer.KindFunction, "fn"},
		{lexer.KindLParen, "("}, {lexer.KindIdent, "x"}, {lexer.KindComma, ","}, {lexer.KindIdent, "y"}, {lexer.KindRParen, ")"},
		{lexer.KindLBrace, "{"}, {lexer.KindIdent, "x"}, {lexer.KindPlus, "+"}, {lexer.KindIdent, "y"}, {lexer.KindSemicolon, ";"},
		{lexer.KindRBrace, "}"}, {lexer.KindSemicolon, ";"},
		{lexer.KindLet, "let"}, {lexer.KindIdent, "result"}, {lexer.KindAssign, "="}, {lexer.KindIdent, "add"},
		{lexer.KindLParen, "("}, {lexer.KindIdent, "five"}, {lexer.KindComma, ","}, {lexer.KindIdent, "ten"}, {lexer.KindRParen, ")"},
		{lexer.KindSemicolon, ";"},
		{lexer.KindBang, "!"}, {lexer.KindMinus, "-"}, {lexer.KindSlash, "/"}, {lexer.KindAsterisk, "*"}, {lexer.KindInt, "5"}, {lexer.KindSemicolon, ";"},
		{lexer.KindInt, "5"}, {lexer.KindLT, "<"}, {lexer.KindInt, "10"}, {lexer.KindGT, ">"}, {lexer.KindInt, "5"}, {lexer.KindSemicolon, ";"},
		{lexer.KindIf, "if"}, {lexer.KindLParen, "("}, {lexer.KindInt, "5"}, {lexer.KindLT, "<"}, {lexer.KindInt, "10"}, {lexer.KindRParen, ")"},
		{lexer.KindLBrace, "{"}, {lexer.KindReturn, "return"}, {lexer.KindTrue, "true"}, {lexer.KindSemicolon, ";"}, {lexer.KindRBrace, "}"},
		{lexer.KindElse, "else"}, {lexer.KindLBrace, "{"}, {lexer.KindReturn, "return"}, {lexer.KindFalse, "false"}, {lexer.KindSemicolon, ";"},
		{lexer.KindRBrace, "}"},
		{lexer.KindInt, "10"}, {lexer.KindEQ, "=="}, {lexer.KindInt, "10"}, {lexer.KindSemicolon, ";"},
		{lexer.KindInt, "10"}, {lexer.KindNotEQ, "!="}, {lexer.KindInt, "9"}, {lexer.KindSemicolon, ";"},
		{lexer.KindEOF, ""},
	}

	s := lexer.NewScanner(src)
	for i, exp := range expected {
		tok := s.Next()
		if tok.Kind != exp.kind {
			t.Fatalf("token %d: expected kind %v, got %v (%q)", i, exp.kind, tok.Kind, tok.Literal)
		}
		if tok.Literal != exp.literal {
			t.Fatalf("token %d: expected literal %q, got %q", i, exp.literal, tok.Literal)
		}
	}
}

func TestScannerTwoCharOperators(t *testing.T) {
	tests := []struct {
		src  string
		want []lexer.Kind
	}{
		{"==", []lexer.Kind{lexer.KindEQ, lexer.KindEOF}},
		{"!=", []lexer.Kind{lexer.KindNotEQ, lexer.KindEOF}},
		{"= =", []lexer.Kind{lexer.KindAssign, lexer.KindAssign, lexer.KindEOF}},
		{"===", []lexer.Kind{lexer.KindEQ, lexer.KindAssign, lexer.KindEOF}},
		{"!==", []lexer.Kind{lexer.KindNotEQ, lexer.KindAssign, lexer.KindEOF}},
		{"!!", []lexer.Kind{lexer.KindBang, lexer.KindBang, lexer.KindEOF}},
		{"=", []lexer.Kind{lexer.KindAssign, lexer.KindEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := lexer.NewScanner(tt.src)
			for i, want := range tt.want {
				if got := s.Next().Kind; got != want {
					t.Errorf("token %d: expected %v, got %v", i, want, got)
				}
			}
		})
	}
}

func TestScannerEOFIdempotent(t *testing.T) {
	for _, src := range []string{"", "   \t\r\n  ", "x"} {
		s := lexer.NewScanner(src)
		if src == "x" {
			s.Next()
		}
		for i := 0; i < 5; i++ {
			tok := s.Next()
			if tok.Kind != lexer.KindEOF {
				t.Fatalf("%q call %d: expected EOF, got %v", src, i, tok.Kind)
			}
			if tok.Literal != "" {
				t.Fatalf("%q call %d: expected empty literal, got %q", src, i, tok.Literal)
			}
		}
	}
}

func TestScannerIllegal(t *testing.T) {
	s := lexer.NewScanner("a @ 1 # é€")

	expected := []expectedToken{
		{lexer.KindIdent, "a"},
		{lexer.KindIllegal, "@"},
		{lexer.KindInt, "1"},
		{lexer.KindIllegal, "#"},
		{lexer.KindIdent, "é"},
		{lexer.KindIllegal, "€"},
		{lexer.KindEOF, ""},
	}
	for i, exp := range expected {
		tok := s.Next()
		if tok.Kind != exp.kind || tok.Literal != exp.literal {
			t.Errorf("token %d: expected %v %q, got %v %q", i, exp.kind, exp.literal, tok.Kind, tok.Literal)
		}
	}
}

func TestScannerIdentifiers(t *testing.T) {
	tests := []struct {
		src  string
		want []expectedToken
	}{
		{"foo_bar", []expectedToken{{lexer.KindIdent, "foo_bar"}}},
		{"grüße", []expectedToken{{lexer.KindIdent, "grüße"}}},
		{"letter", []expectedToken{{lexer.KindIdent, "letter"}}},
		{"fnx", []expectedToken{{lexer.KindIdent, "fnx"}}},
		{"x1", []expectedToken{{lexer.KindIdent, "x"}, {lexer.KindInt, "1"}}},
		{"123abc", []expectedToken{{lexer.KindInt, "123"}, {lexer.KindIdent, "abc"}}},
		{"007", []expectedToken{{lexer.KindInt, "007"}}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := lexer.NewScanner(tt.src)
			for i, exp := range tt.want {
				tok := s.Next()
				if tok.Kind != exp.kind || tok.Literal != exp.literal {
					t.Errorf("token %d: expected %v %q, got %v %q", i, exp.kind, exp.literal, tok.Kind, tok.Literal)
				}
			}
			if tok := s.Next(); tok.Kind != lexer.KindEOF {
				t.Errorf("expected EOF, got %v", tok.Kind)
			}
		})
	}
}

func TestScannerPositions(t *testing.T) {
	s := lexer.NewScanner("let x\n  = ü;")

	expected := []struct {
		literal      string
		line, column int
	}{
		{"let", 1, 1},
		{"x", 1, 5},
		{"=", 2, 3},
		{"ü", 2, 5},
		{";", 2, 6},
	}
	for _, exp := range expected {
		tok := s.Next()
		if tok.Literal != exp.literal || tok.Line != exp.line || tok.Column != exp.column {
			t.Errorf("expected %q at %d:%d, got %q at %d:%d", exp.literal, exp.line, exp.column, tok.Literal, tok.Line, tok.Column)
		}
	}
}

func TestScannerRoundTrip(t *testing.T) {
	src := "let add = fn ( a , b ) { return a + b ; } ; add ( 1 , 2 ) == 3 != false"

	var parts []string
	var kinds []lexer.Kind
	for tok := range lexer.NewScanner(src).All() {
		kinds = append(kinds, tok.Kind)
		if tok.Kind != lexer.KindEOF {
			parts = append(parts, tok.Literal)
		}
	}

	if joined := strings.Join(parts, " "); joined != src {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", joined, src)
	}

	var again []lexer.Kind
	for tok := range lexer.NewScanner(strings.Join(parts, "\n")).All() {
		again = append(again, tok.Kind)
	}
	if len(again) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d", len(kinds), len(again))
	}
	for i := range kinds {
		if kinds[i] != again[i] {
			t.Errorf("token %d: expected %v, got %v", i, kinds[i], again[i])
		}
	}
}

func TestScannerAllStopsEarly(t *testing.T) {
	s := lexer.NewScanner("a b c d")
	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	if tok := s.Next(); tok.Literal != "c" {
		t.Errorf("expected scanner to resume at c, got %q", tok.Literal)
	}
}

func TestScannerReset(t *testing.T) {
	s := lexer.NewScanner("first second")
	s.Next()
	s.Reset("third")

	tok := s.Next()
	if tok.Literal != "third" || tok.Line != 1 || tok.Column != 1 {
		t.Errorf("expected fresh scan of third at 1:1, got %q at %d:%d", tok.Literal, tok.Line, tok.Column)
	}
	if tok := s.Next(); tok.Kind != lexer.KindEOF {
		t.Errorf("expected EOF after reset input, got %v", tok.Kind)
	}
}

func TestLookupIdent(t *testing.T) {
	for word, want := range map[string]lexer.Kind{
		"fn": lexer.KindFunction, "let": lexer.KindLet, "true": lexer.KindTrue,
		"false": lexer.KindFalse, "if": lexer.KindIf, "else": lexer.KindElse,
		"return": lexer.KindReturn, "Let": lexer.KindIdent, "foo": lexer.KindIdent,
	} {
		if got := lexer.LookupIdent(word); got != want {
			t.Errorf("LookupIdent(%q): expected %v, got %v", word, want, got)
		}
	}
}

func FuzzScanner(f *testing.F) {
	f.Add("let x = 5;")
	f.Add("fn(a, b) { a != b }")
	f.Add("\x00\xff€ == !")

	f.Fuzz(func(t *testing.T, src string) {
		s := lexer.NewScanner(src)
		// Every token consumes at least one rune, so the stream is bounded.
		limit := len([]rune(src)) + 1
		for i := 0; ; i++ {
			if i > limit {
				t.Fatalf("scanner did not reach EOF within %d tokens", limit)
			}
			if s.Next().Kind == lexer.KindEOF {
				break
			}
		}
		if s.Next().Kind != lexer.KindEOF {
			t.Fatal("EOF was not sticky")
		}
	})
}
