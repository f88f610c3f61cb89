package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindIllegal

	KindIdent
	KindInt

	KindAssign   // =
	KindPlus     // +
	KindMinus    // -
	KindBang     // !
	KindAsterisk // *
	KindSlash    // /
	KindLT       // <
	KindGT       // >
	KindEQ       // ==
	KindNotEQ    // !=

	KindComma     // ,
	KindSemicolon // ;
	KindLParen    // (
	KindRParen    // )
	KindLBrace    // {
	KindRBrace    // }

	KindFunction // fn
	KindLet
	KindTrue
	KindFalse
	KindIf
	KindElse
	KindReturn
)

var kindNames = [...]string{
	KindEOF:       "EOF",
	KindIllegal:   "ILLEGAL",
	KindIdent:     "IDENT",
	KindInt:       "INT",
	KindAssign:    "=",
	KindPlus:      "+",
	KindMinus:     "-",
	KindBang:      "!",
	KindAsterisk:  "*",
	KindSlash:     "/",
	KindLT:        "<",
	KindGT:        ">",
	KindEQ:        "==",
	KindNotEQ:     "!=",
	KindComma:     ",",
	KindSemicolon: ";",
	KindLParen:    "(",
	KindRParen:    ")",
	KindLBrace:    "{",
	KindRBrace:    "}",
	KindFunction:  "FUNCTION",
	KindLet:       "LET",
	KindTrue:      "TRUE",
	KindFalse:     "FALSE",
	KindIf:        "IF",
	KindElse:      "ELSE",
	KindReturn:    "RETURN",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

var keywords = map[string]Kind{
	"fn":     KindFunction,
	"let":    KindLet,
	"true":   KindTrue,
	"false":  KindFalse,
	"if":     KindIf,
	"else":   KindElse,
	"return": KindReturn,
}

// LookupIdent classifies an identifier run as a keyword or a plain IDENT.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return KindIdent
}

// Token is a lexical unit with its source text.
// Line and Column are 1-based; Column counts runes, not bytes.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Column  int
}
