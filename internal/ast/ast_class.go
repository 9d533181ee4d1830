package ast

import (
	"github.com/funvibe/elz/internal/token"
)

// ClassDeclaration represents
//
//	class Foo {
//	  bar: int;
//	  ::new(): Foo = Foo { bar: 1 };
//	  get(): int;
//	}
type ClassDeclaration struct {
	Token   token.Token
	Name    string
	Members []ClassMember
}

func (cd *ClassDeclaration) declarationNode()      {}
func (cd *ClassDeclaration) TokenLiteral() string  { return cd.Token.Lexeme }
func (cd *ClassDeclaration) GetToken() token.Token { return cd.Token }

// Fields returns the field members in declaration order.
func (cd *ClassDeclaration) Fields() []*FieldMember {
	var fields []*FieldMember
	for _, m := range cd.Members {
		if f, ok := m.(*FieldMember); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// ClassMember is one of *FieldMember, *MethodMember, *StaticMethodMember.
type ClassMember interface {
	Node
	memberNode()
	MemberName() string
}

// FieldMember is `name: Type;` inside a class body.
type FieldMember struct {
	Token token.Token
	Name  string
	Type  Type
}

func (fm *FieldMember) memberNode()           {}
func (fm *FieldMember) MemberName() string    { return fm.Name }
func (fm *FieldMember) TokenLiteral() string  { return fm.Token.Lexeme }
func (fm *FieldMember) GetToken() token.Token { return fm.Token }

// MethodMember is an instance method: reached through `value.name(...)`.
type MethodMember struct {
	Function *FunctionDeclaration
}

func (mm *MethodMember) memberNode()           {}
func (mm *MethodMember) MemberName() string    { return mm.Function.Name }
func (mm *MethodMember) TokenLiteral() string  { return mm.Function.TokenLiteral() }
func (mm *MethodMember) GetToken() token.Token { return mm.Function.GetToken() }

// StaticMethodMember is `::name(...)`: reached only through `Class::name(...)`.
type StaticMethodMember struct {
	Function *FunctionDeclaration
}

func (sm *StaticMethodMember) memberNode()           {}
func (sm *StaticMethodMember) MemberName() string    { return sm.Function.Name }
func (sm *StaticMethodMember) TokenLiteral() string  { return sm.Function.TokenLiteral() }
func (sm *StaticMethodMember) GetToken() token.Token { return sm.Function.GetToken() }
