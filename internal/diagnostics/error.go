package diagnostics

import (
	"fmt"

	"github.com/funvibe/elz/internal/token"
)

// DiagnosticError is the single error produced by a failed check or
// lowering run, carrying its kind and the triggering location.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

// NewError formats the template registered for code with args.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	msg, ok := errorTemplates[code]
	if !ok {
		msg = fmt.Sprint(args...)
	} else {
		msg = fmt.Sprintf(msg, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, File: tok.File, Message: msg}
}

func (e *DiagnosticError) Error() string {
	pos := fmt.Sprintf("%d:%d", e.Token.Line, e.Token.Column)
	if e.File != "" {
		pos = e.File + ":" + pos
	}
	return fmt.Sprintf("%s: error[%s]: %s", pos, e.Code, e.Message)
}

// Kind returns the error kind name, e.g. "TypeMismatch".
func (e *DiagnosticError) Kind() string {
	return e.Code.Name()
}

// Is makes errors.Is match on the error code:
//
//	errors.Is(err, diagnostics.Code(diagnostics.ErrRedefinition))
func (e *DiagnosticError) Is(target error) bool {
	t, ok := target.(*DiagnosticError)
	if !ok {
		return false
	}
	return t.Token.IsZero() && t.Message == "" && t.Code == e.Code
}

// Code returns a sentinel that matches any diagnostic with the given code.
func Code(code ErrorCode) *DiagnosticError {
	return &DiagnosticError{Code: code}
}
