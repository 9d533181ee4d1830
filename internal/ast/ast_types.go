package ast

import (
	"strings"

	"github.com/funvibe/elz/internal/token"
)

// Type is a type annotation as written in source.
type Type interface {
	Node
	typeNode()
	String() string
}

// NamedType is `int`, `Foo` or `List[int]`.
type NamedType struct {
	Token token.Token
	Name  string
	Args  []Type
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

func (nt *NamedType) String() string {
	if len(nt.Args) == 0 {
		return nt.Name
	}
	args := make([]string, len(nt.Args))
	for i, a := range nt.Args {
		args[i] = a.String()
	}
	return nt.Name + "[" + strings.Join(args, ", ") + "]"
}
