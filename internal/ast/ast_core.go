package ast

import (
	"github.com/funvibe/elz/internal/token"
)

// Node is the base interface for all tree nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Declaration is a top-level item of a program.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is a Node that appears inside a block body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node handed over by the parser.
type Program struct {
	File         string
	Declarations []Declaration
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].GetToken()
	}
	return token.Token{File: p.File}
}

// ImportDeclaration represents `import path::to::module`.
// Neither the checker nor the code generator act on it.
type ImportDeclaration struct {
	Token token.Token
	Path  string
}

func (id *ImportDeclaration) declarationNode()      {}
func (id *ImportDeclaration) TokenLiteral() string  { return id.Token.Lexeme }
func (id *ImportDeclaration) GetToken() token.Token { return id.Token }

// FunctionTag marks functions whose implementation is supplied elsewhere.
type FunctionTag int

const (
	TagNone    FunctionTag = iota
	TagBuiltin             // @Builtin: provided by the backend, never lowered
)

func (t FunctionTag) IsBuiltin() bool { return t == TagBuiltin }

func (t FunctionTag) String() string {
	if t == TagBuiltin {
		return "builtin"
	}
	return ""
}

// Parameter is a single `name: Type` entry of a parameter list.
type Parameter struct {
	Token token.Token
	Name  string
	Type  Type
}

func (p *Parameter) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Parameter) GetToken() token.Token { return p.Token }

// Body is either an *ExpressionBody (`f(): int = 1;`) or a *BlockStatement.
// A nil Body marks a forward declaration (`f(): void;`).
type Body interface {
	Node
	bodyNode()
}

// FunctionDeclaration is a top-level function, a method or a static method.
type FunctionDeclaration struct {
	Token      token.Token
	Name       string
	Tag        FunctionTag
	Parameters []*Parameter
	ReturnType Type
	Body       Body
}

func (fd *FunctionDeclaration) declarationNode()      {}
func (fd *FunctionDeclaration) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token { return fd.Token }

// IsDeclarationOnly reports whether the function has no body.
func (fd *FunctionDeclaration) IsDeclarationOnly() bool { return fd.Body == nil }

// WithReceiver returns a copy of the function whose parameter list starts
// with an extra parameter. The receiver's parameter slice is not touched.
func (fd *FunctionDeclaration) WithReceiver(receiver *Parameter) *FunctionDeclaration {
	params := make([]*Parameter, 0, len(fd.Parameters)+1)
	params = append(params, receiver)
	params = append(params, fd.Parameters...)
	cp := *fd
	cp.Parameters = params
	return &cp
}

// VariableDeclaration is `name: Type = value;`. It is used both at top level
// and as a statement inside blocks.
type VariableDeclaration struct {
	Token token.Token
	Name  string
	Type  Type
	Value Expression
}

func (vd *VariableDeclaration) declarationNode()      {}
func (vd *VariableDeclaration) statementNode()        {}
func (vd *VariableDeclaration) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VariableDeclaration) GetToken() token.Token { return vd.Token }

// TraitDeclaration is parsed but not supported by the rest of the toolchain.
type TraitDeclaration struct {
	Token token.Token
	Name  string
}

func (td *TraitDeclaration) declarationNode()      {}
func (td *TraitDeclaration) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TraitDeclaration) GetToken() token.Token { return td.Token }
