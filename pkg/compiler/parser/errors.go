package parser

import (
	"errors"
	"fmt"

	"github.com/agenthands/nmonkey/pkg/compiler/lexer"
)

// ErrSyntax is wrapped by the error Parse returns for malformed source.
var ErrSyntax = errors.New("syntax error")

// Diagnostic is a single recorded parse failure.
type Diagnostic struct {
	Token lexer.Token // token the parser was looking at
	Msg   string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d:%d: %s", d.Token.Line, d.Token.Column, d.Msg)
}

// SyntaxError carries every diagnostic from one parse.
type SyntaxError struct {
	Diagnostics []Diagnostic
}

func (e *SyntaxError) Error() string {
	errs := make([]error, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		errs[i] = d
	}
	return fmt.Sprintf("%d syntax error(s):\n%v", len(e.Diagnostics), errors.Join(errs...))
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
