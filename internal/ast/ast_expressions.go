package ast

import (
	"github.com/funvibe/elz/internal/token"
)

// Identifier references a binding by name.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()       {}
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()       {}
func (b *BooleanLiteral) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BooleanLiteral) GetToken() token.Token { return b.Token }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

// ListLiteral is `[a, b, c]`. An empty literal has no locally known element type.
type ListLiteral struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()       {}
func (ll *ListLiteral) TokenLiteral() string  { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token { return ll.Token }

// CallExpression is `callee(args)`. The callee is an *Identifier,
// a *MemberExpression (method call) or a *StaticAccessExpression.
type CallExpression struct {
	Token     token.Token // The '(' token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// MemberExpression is dot access: `value.name`.
type MemberExpression struct {
	Token  token.Token // The '.' token
	Left   Expression
	Member *Identifier
}

func (me *MemberExpression) expressionNode()       {}
func (me *MemberExpression) TokenLiteral() string  { return me.Token.Lexeme }
func (me *MemberExpression) GetToken() token.Token { return me.Token }

// StaticAccessExpression is qualified access to a static method: `Foo::new`.
type StaticAccessExpression struct {
	Token     token.Token // The '::' token
	ClassName *Identifier
	Member    *Identifier
}

func (sa *StaticAccessExpression) expressionNode()       {}
func (sa *StaticAccessExpression) TokenLiteral() string  { return sa.Token.Lexeme }
func (sa *StaticAccessExpression) GetToken() token.Token { return sa.Token }

// FieldInit is a single `field: expr` entry of a class construction.
type FieldInit struct {
	Token token.Token
	Name  string
	Value Expression
}

func (fi *FieldInit) TokenLiteral() string  { return fi.Token.Lexeme }
func (fi *FieldInit) GetToken() token.Token { return fi.Token }

// ClassConstruction is `Foo { bar: 1, baz: "x" }`.
type ClassConstruction struct {
	Token     token.Token
	ClassName *Identifier
	Fields    []*FieldInit
}

func (cc *ClassConstruction) expressionNode()       {}
func (cc *ClassConstruction) TokenLiteral() string  { return cc.Token.Lexeme }
func (cc *ClassConstruction) GetToken() token.Token { return cc.Token }

// InfixExpression is a binary operator application, e.g. `a + b`.
type InfixExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
