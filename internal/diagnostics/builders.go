package diagnostics

import (
	"fmt"

	"github.com/funvibe/elz/internal/token"
)

func Redefinition(tok token.Token, name string) *DiagnosticError {
	return NewError(ErrRedefinition, tok, name)
}

func UndefinedName(tok token.Token, name string) *DiagnosticError {
	return NewError(ErrUndefinedName, tok, name)
}

func TypeMismatch(tok token.Token, expected, actual fmt.Stringer) *DiagnosticError {
	return NewError(ErrTypeMismatch, tok, expected, actual)
}

func NotCallable(tok token.Token, callee string, typ fmt.Stringer) *DiagnosticError {
	return NewError(ErrNotCallable, tok, callee, typ)
}

func ArityMismatch(tok token.Token, expected, actual int) *DiagnosticError {
	return NewError(ErrArityMismatch, tok, expected, actual)
}

func NotAClass(tok token.Token, name string) *DiagnosticError {
	return NewError(ErrNotAClass, tok, name)
}

func MissingFieldInit(tok token.Token, field string) *DiagnosticError {
	return NewError(ErrMissingFieldInit, tok, field)
}

func UnknownFieldInit(tok token.Token, class, field string) *DiagnosticError {
	return NewError(ErrUnknownFieldInit, tok, class, field)
}

func InvalidConstructionContext(tok token.Token, class string) *DiagnosticError {
	return NewError(ErrInvalidConstructionContext, tok, class)
}

func NoSuchMember(tok token.Token, owner, name string) *DiagnosticError {
	return NewError(ErrNoSuchMember, tok, owner, name)
}

func StaticMemberNotVisible(tok token.Token, class, name string) *DiagnosticError {
	return NewError(ErrStaticMemberNotVisible, tok, name, class, name)
}

// NotAValue reports a name that is bound to something other than a value,
// e.g. a class used as an expression.
func NotAValue(tok token.Token, kind, name string) *DiagnosticError {
	return NewError(ErrNotAValue, tok, kind, name)
}

func UnknownOperator(tok token.Token, op string) *DiagnosticError {
	return NewError(ErrUnknownOperator, tok, op)
}

func UnresolvedReference(tok token.Token, name string) *DiagnosticError {
	return NewError(ErrUnresolvedReference, tok, name)
}

func MissingSignature(tok token.Token, name string) *DiagnosticError {
	return NewError(ErrMissingSignature, tok, name)
}
