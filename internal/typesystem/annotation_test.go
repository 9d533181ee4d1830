package typesystem

import (
	"testing"

	"github.com/funvibe/elz/internal/ast"
)

func TestFromAnnotation(t *testing.T) {
	tests := []struct {
		name string
		in   ast.Type
		want string
	}{
		{"void", ast.NewType("void"), "void"},
		{"int", ast.NewType("int"), "int"},
		{"list", ast.NewType("List", ast.NewType("f64")), "List[f64]"},
		{"nested list", ast.NewType("List", ast.NewType("List", ast.NewType("bool"))), "List[List[bool]]"},
		{"class", ast.NewType("Foo"), "Foo"},
		{"missing", nil, "void"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromAnnotation(tt.in).String(); got != tt.want {
				t.Errorf("FromAnnotation = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassType(t *testing.T) {
	cd := ast.NewClass("Point",
		ast.NewField("x", ast.NewType("int")),
		ast.NewField("y", ast.NewType("int")),
		ast.NewStaticMethod(ast.NewFunction("origin", nil, ast.NewType("Point"), nil)),
		ast.NewMethod(ast.NewFunction("norm", nil, ast.NewType("f64"), nil)),
	)
	c := ClassType(cd)
	if got := c.FieldNames(); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("fields = %v", got)
	}
	if !c.HasStaticMethod("origin") {
		t.Error("missing static method origin")
	}
	if m, ok := c.Methods["norm"]; !ok || m.ReturnType != Float {
		t.Errorf("method norm = %v", m)
	}
}
