package typesystem

import (
	"strconv"
	"strings"

	"github.com/funvibe/elz/internal/config"
)

// Type is the interface for all types in our system.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []TVar
}

// TVar is a free type variable: a placeholder for a type not known yet,
// e.g. the element type of an empty list literal.
type TVar struct {
	Name string
}

func (t TVar) String() string {
	// Fresh variables are numbered per run; hide the number in tests
	// so expected messages do not depend on inference order.
	if config.IsTestMode && strings.HasPrefix(t.Name, "t") {
		if _, err := strconv.Atoi(t.Name[1:]); err == nil {
			return "t?"
		}
	}
	return t.Name
}

func (t TVar) Apply(s Subst) Type {
	return applyWithCycleCheck(t, s, make(map[string]bool))
}

func (t TVar) FreeTypeVariables() []TVar {
	return []TVar{t}
}

// applyWithCycleCheck follows variable chains (t1 -> t2 -> int) without
// looping forever on a self-referencing substitution.
func applyWithCycleCheck(tv TVar, s Subst, visited map[string]bool) Type {
	if visited[tv.Name] {
		return tv
	}
	replacement, ok := s[tv.Name]
	if !ok {
		return tv
	}
	if next, ok := replacement.(TVar); ok {
		if next.Name == tv.Name {
			return tv
		}
		visited[tv.Name] = true
		return applyWithCycleCheck(next, s, visited)
	}
	return replacement.Apply(s)
}

// TVoid is the type of functions that return nothing.
type TVoid struct{}

func (t TVoid) String() string            { return config.VoidTypeName }
func (t TVoid) Apply(Subst) Type          { return t }
func (t TVoid) FreeTypeVariables() []TVar { return nil }

// TCon is a primitive type constant (int, f64, bool, string).
type TCon struct {
	Name string
}

func (t TCon) String() string            { return t.Name }
func (t TCon) Apply(Subst) Type          { return t }
func (t TCon) FreeTypeVariables() []TVar { return nil }

// TList is the built-in list container, the only parametric type.
type TList struct {
	Elem Type
}

func (t TList) String() string {
	return config.ListTypeName + "[" + t.Elem.String() + "]"
}

func (t TList) Apply(s Subst) Type {
	return TList{Elem: t.Elem.Apply(s)}
}

func (t TList) FreeTypeVariables() []TVar {
	return t.Elem.FreeTypeVariables()
}

// TFunc is a function signature. Methods are typed without their receiver.
type TFunc struct {
	Params     []Type
	ReturnType Type
}

func (t TFunc) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> " + t.ReturnType.String()
}

func (t TFunc) Apply(s Subst) Type {
	params := make([]Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.Apply(s)
	}
	return TFunc{Params: params, ReturnType: t.ReturnType.Apply(s)}
}

func (t TFunc) FreeTypeVariables() []TVar {
	var vars []TVar
	for _, p := range t.Params {
		vars = append(vars, p.FreeTypeVariables()...)
	}
	vars = append(vars, t.ReturnType.FreeTypeVariables()...)
	return uniqueTVars(vars)
}

// Field is a named, typed slot of a class.
type Field struct {
	Name string
	Type Type
}

// TClass is a user-defined class. Two classes are the same type iff their
// names are equal; a TClass built from an annotation carries only the name,
// the full definition is kept in the root scope.
type TClass struct {
	Name          string
	Fields        []Field
	Methods       map[string]TFunc
	StaticMethods map[string]TFunc
}

// NewClass returns a class type with empty member tables.
func NewClass(name string) TClass {
	return TClass{
		Name:          name,
		Methods:       make(map[string]TFunc),
		StaticMethods: make(map[string]TFunc),
	}
}

func (t TClass) String() string            { return t.Name }
func (t TClass) Apply(Subst) Type          { return t }
func (t TClass) FreeTypeVariables() []TVar { return nil }

// Field looks up a declared field by name.
func (t TClass) Field(name string) (Type, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// FieldNames returns the declared field names in declaration order.
func (t TClass) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// Member resolves `value.name`: fields first, then instance methods.
// Static methods are never found here.
func (t TClass) Member(name string) (Type, bool) {
	if ft, ok := t.Field(name); ok {
		return ft, true
	}
	if mt, ok := t.Methods[name]; ok {
		return mt, true
	}
	return nil, false
}

// StaticMethod resolves `Class::name`.
func (t TClass) StaticMethod(name string) (TFunc, bool) {
	fn, ok := t.StaticMethods[name]
	return fn, ok
}

// HasStaticMethod reports whether name is a static method of the class.
func (t TClass) HasStaticMethod(name string) bool {
	_, ok := t.StaticMethods[name]
	return ok
}

// Void is the single value of TVoid.
var Void Type = TVoid{}

// Built-in primitive types
var (
	Int    = TCon{Name: config.IntTypeName}
	Float  = TCon{Name: config.FloatTypeName}
	Bool   = TCon{Name: config.BoolTypeName}
	String = TCon{Name: config.StringTypeName}
)

// IsVoid reports whether t is the void type.
func IsVoid(t Type) bool {
	_, ok := t.(TVoid)
	return ok
}

// Subst is a mapping from Type Variables to Types.
type Subst map[string]Type

// Compose combines two substitutions.
func (s1 Subst) Compose(s2 Subst) Subst {
	subst := Subst{}
	for k, v := range s2 {
		subst[k] = v
	}
	for k, v := range s1 {
		subst[k] = v.Apply(s2)
	}
	return subst
}

func uniqueTVars(vars []TVar) []TVar {
	unique := []TVar{}
	seen := map[string]bool{}
	for _, v := range vars {
		if !seen[v.Name] {
			seen[v.Name] = true
			unique = append(unique, v)
		}
	}
	return unique
}
