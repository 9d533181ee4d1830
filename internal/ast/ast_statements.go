package ast

import (
	"github.com/funvibe/elz/internal/token"
)

// BlockStatement is `{ ... }` used as a function body.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (bs *BlockStatement) bodyNode()             {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }

// ExpressionBody is `= expr;` used as a function body.
type ExpressionBody struct {
	Expression Expression
}

func (eb *ExpressionBody) bodyNode()             {}
func (eb *ExpressionBody) TokenLiteral() string  { return eb.Expression.TokenLiteral() }
func (eb *ExpressionBody) GetToken() token.Token { return eb.Expression.GetToken() }

// ReturnStatement is `return;` or `return expr;`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for a bare return
}

func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// CallStatement is a call evaluated only for its effect: `foo();`.
type CallStatement struct {
	Token token.Token
	Call  *CallExpression
}

func (cs *CallStatement) statementNode()        {}
func (cs *CallStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CallStatement) GetToken() token.Token { return cs.Token }
