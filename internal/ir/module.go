package ir

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotRegistered is returned when a definition is pushed before its
// signature was remembered.
var ErrNotRegistered = errors.New("signature not pre-registered")

// Module is the output of lowering one compilation unit.
//
// It is filled in two steps: Remember records signatures so any body can
// refer to any top-level name, then the Push methods append lowered
// definitions in source order.
type Module struct {
	ID          uuid.UUID
	Name        string
	signatures  map[string]Signature
	definitions []Definition
}

// NewModule creates an empty module with a fresh build identity.
func NewModule(name string) *Module {
	return &Module{
		ID:         uuid.New(),
		Name:       name,
		signatures: make(map[string]Signature),
	}
}

// Remember pre-registers a signature under its qualified name.
func (m *Module) Remember(sig Signature) {
	m.signatures[sig.QualifiedName()] = sig
}

// Signature looks up a pre-registered signature by qualified name.
func (m *Module) Signature(name string) (Signature, bool) {
	sig, ok := m.signatures[name]
	return sig, ok
}

// PushFunction appends a lowered function.
func (m *Module) PushFunction(fn *Function) error {
	if err := m.requireSignature(fn.DefinitionName()); err != nil {
		return err
	}
	m.definitions = append(m.definitions, fn)
	return nil
}

// PushVariable appends a lowered global variable.
func (m *Module) PushVariable(v *Variable) error {
	if err := m.requireSignature(v.Name); err != nil {
		return err
	}
	m.definitions = append(m.definitions, v)
	return nil
}

// PushType appends a type definition and registers the signatures of the
// functions erased from its methods, which are pushed right after it.
func (m *Module) PushType(t *TypeDef, members []Signature) {
	for _, sig := range members {
		sig.Owner = t.Name
		m.Remember(sig)
	}
	m.definitions = append(m.definitions, t)
}

func (m *Module) requireSignature(name string) error {
	if _, ok := m.signatures[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return nil
}

// Definitions returns every definition in the order it was pushed.
func (m *Module) Definitions() []Definition {
	return m.definitions
}

// Functions returns the lowered functions in order.
func (m *Module) Functions() []*Function {
	var out []*Function
	for _, d := range m.definitions {
		if fn, ok := d.(*Function); ok {
			out = append(out, fn)
		}
	}
	return out
}

// Variables returns the lowered globals in order.
func (m *Module) Variables() []*Variable {
	var out []*Variable
	for _, d := range m.definitions {
		if v, ok := d.(*Variable); ok {
			out = append(out, v)
		}
	}
	return out
}

// Types returns the type definitions in order.
func (m *Module) Types() []*TypeDef {
	var out []*TypeDef
	for _, d := range m.definitions {
		if t, ok := d.(*TypeDef); ok {
			out = append(out, t)
		}
	}
	return out
}

// Function finds a lowered function by qualified name.
func (m *Module) Function(name string) (*Function, bool) {
	for _, fn := range m.Functions() {
		if fn.DefinitionName() == name {
			return fn, true
		}
	}
	return nil, false
}
