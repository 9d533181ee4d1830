// Package symbols implements the scope chain used by the semantic checker.
//
// A SymbolTable maps names to types and links to at most one outer table.
// The root table lives for a whole compilation; every function body and
// class body gets an enclosed table that is dropped when its check ends.
package symbols

import (
	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/token"
	"github.com/funvibe/elz/internal/typesystem"
)

type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	FunctionSymbol
	ClassSymbol
	ParameterSymbol
	FieldSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case FunctionSymbol:
		return "function"
	case ClassSymbol:
		return "class"
	case ParameterSymbol:
		return "parameter"
	case FieldSymbol:
		return "field"
	default:
		return "variable"
	}
}

type Symbol struct {
	Name  string
	Type  typesystem.Type
	Kind  SymbolKind
	Token token.Token // Where the symbol was defined
}

type SymbolTable struct {
	store map[string]Symbol
	outer *SymbolTable
}

// NewSymbolTable creates the root scope of a compilation.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{store: make(map[string]Symbol)}
}

// NewEnclosedSymbolTable creates a scope nested in outer.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	return &SymbolTable{store: make(map[string]Symbol), outer: outer}
}

// Define binds name in this scope. A second binding of the same name in
// the same scope is a Redefinition; shadowing an outer binding is fine.
func (s *SymbolTable) Define(tok token.Token, name string, t typesystem.Type, kind SymbolKind) error {
	if s.IsDefinedLocally(name) {
		return diagnostics.Redefinition(tok, name)
	}
	s.store[name] = Symbol{Name: name, Type: t, Kind: kind, Token: tok}
	return nil
}

// FindWithScope returns the symbol and the scope where it was defined
func (s *SymbolTable) FindWithScope(name string) (Symbol, *SymbolTable, bool) {
	sym, ok := s.store[name]
	if ok {
		return sym, s, true
	}
	if s.outer != nil {
		return s.outer.FindWithScope(name)
	}
	return Symbol{}, nil, false
}

func (s *SymbolTable) Find(name string) (Symbol, bool) {
	sym, _, ok := s.FindWithScope(name)
	return sym, ok
}

// Lookup is Find that reports absence as an UndefinedName diagnostic at tok.
func (s *SymbolTable) Lookup(tok token.Token, name string) (Symbol, error) {
	sym, ok := s.Find(name)
	if !ok {
		return Symbol{}, diagnostics.UndefinedName(tok, name)
	}
	return sym, nil
}

// IsDefinedLocally checks if a symbol is defined in the current scope (shallow check)
func (s *SymbolTable) IsDefinedLocally(name string) bool {
	_, ok := s.store[name]
	return ok
}
