package token

import "fmt"

// Token carries the source position of a tree node.
// The external parser fills it; the checker and code generator only read it.
type Token struct {
	Lexeme string
	File   string
	Line   int
	Column int
}

// At builds a position-only token, mostly for tests and decoded trees.
func At(line, column int) Token {
	return Token{Line: line, Column: column}
}

func (t Token) IsZero() bool {
	return t.Line == 0 && t.Column == 0 && t.File == ""
}

// String formats the position as file:line:col (file omitted when unknown).
func (t Token) String() string {
	if t.File == "" {
		return fmt.Sprintf("%d:%d", t.Line, t.Column)
	}
	return fmt.Sprintf("%s:%d:%d", t.File, t.Line, t.Column)
}
