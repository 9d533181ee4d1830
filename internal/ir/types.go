// Package ir holds the lowered form of a program handed to the backend:
// free functions, global variables and flat type definitions. There are no
// methods; an instance method is a function whose first parameter is the
// receiver.
package ir

import "strings"

// Type is a lowered type reference.
type Type interface {
	String() string
	irType()
}

// Void is the return type of functions without a result.
type Void struct{}

// Named refers to a primitive or a user type by name.
type Named struct {
	Name string
}

// List is the built-in list container.
type List struct {
	Elem Type
}

func (Void) irType()  {}
func (Named) irType() {}
func (List) irType()  {}

func (Void) String() string    { return "void" }
func (t Named) String() string { return t.Name }
func (t List) String() string  { return "List[" + t.Elem.String() + "]" }

// Param is a function parameter.
type Param struct {
	Name string
	Type Type
}

// Field is a slot of a type definition.
type Field struct {
	Name string
	Type Type
}

// QualifiedName joins an owning type and a member name, e.g. Foo::new.
// Free definitions have an empty owner and keep their plain name.
func QualifiedName(owner, name string) string {
	if owner == "" {
		return name
	}
	return owner + "::" + name
}

func typeList(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
