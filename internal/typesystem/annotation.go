package typesystem

import (
	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/config"
)

// FromAnnotation converts a written type into a Type.
// Names that are neither void, a primitive nor List are nominal class
// references; their definition is looked up when members are needed.
func FromAnnotation(t ast.Type) Type {
	nt, ok := t.(*ast.NamedType)
	if !ok || nt == nil {
		return Void
	}
	switch {
	case nt.Name == config.VoidTypeName:
		return Void
	case nt.Name == config.ListTypeName && len(nt.Args) == 1:
		return TList{Elem: FromAnnotation(nt.Args[0])}
	case config.IsPrimitiveTypeName(nt.Name):
		return TCon{Name: nt.Name}
	default:
		return TClass{Name: nt.Name}
	}
}

// FunctionType builds the signature of a function declaration.
func FunctionType(fn *ast.FunctionDeclaration) TFunc {
	params := make([]Type, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = FromAnnotation(p.Type)
	}
	return TFunc{Params: params, ReturnType: FromAnnotation(fn.ReturnType)}
}

// ClassType builds the full class type of a class declaration: ordered
// fields plus instance and static method signatures.
func ClassType(cd *ast.ClassDeclaration) TClass {
	class := NewClass(cd.Name)
	for _, member := range cd.Members {
		switch m := member.(type) {
		case *ast.FieldMember:
			class.Fields = append(class.Fields, Field{Name: m.Name, Type: FromAnnotation(m.Type)})
		case *ast.MethodMember:
			class.Methods[m.Function.Name] = FunctionType(m.Function)
		case *ast.StaticMethodMember:
			class.StaticMethods[m.Function.Name] = FunctionType(m.Function)
		}
	}
	return class
}
