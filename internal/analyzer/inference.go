package analyzer

import (
	"fmt"

	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/token"
	"github.com/funvibe/elz/internal/typesystem"
)

// InferenceContext holds the state for a type inference pass: the fresh
// variable counter and the substitution accumulated so far.
type InferenceContext struct {
	counter int
	// GlobalSubst stores the accumulated substitution for the entire inference pass
	GlobalSubst typesystem.Subst
}

// NewInferenceContext creates a new inference context.
func NewInferenceContext() *InferenceContext {
	return &InferenceContext{
		GlobalSubst: make(typesystem.Subst),
	}
}

// FreshVar returns a type variable no other part of the pass has seen.
func (ctx *InferenceContext) FreshVar() typesystem.TVar {
	ctx.counter++
	return typesystem.TVar{Name: fmt.Sprintf("t%d", ctx.counter)}
}

// Resolve applies everything learned so far to t.
func (ctx *InferenceContext) Resolve(t typesystem.Type) typesystem.Type {
	return t.Apply(ctx.GlobalSubst)
}

// Unify unifies expected with actual under the current substitution and
// records the bindings it produced. The resolved type is returned; a
// failure is a TypeMismatch located at tok.
//
// Both sides are resolved first, so a variable bound by an earlier
// unification is never bound a second time.
func (ctx *InferenceContext) Unify(tok token.Token, expected, actual typesystem.Type) (typesystem.Type, error) {
	e := ctx.Resolve(expected)
	a := ctx.Resolve(actual)
	s, err := typesystem.Unify(e, a)
	if err != nil {
		return nil, diagnostics.TypeMismatch(tok, e, a)
	}
	ctx.GlobalSubst = ctx.GlobalSubst.Compose(s)
	return ctx.Resolve(e), nil
}
