package typesystem

import (
	"errors"
	"testing"
)

func TestUnifyPrimitives(t *testing.T) {
	if _, err := Unify(Int, Int); err != nil {
		t.Fatalf("int ~ int: unexpected error: %v", err)
	}
	if _, err := Unify(Int, String); err == nil {
		t.Fatal("int ~ string: expected error")
	}
	if _, err := Unify(Void, Void); err != nil {
		t.Fatalf("void ~ void: unexpected error: %v", err)
	}
	if _, err := Unify(Void, Int); err == nil {
		t.Fatal("void ~ int: expected error")
	}
}

func TestUnifyFreeVariableBindsOnce(t *testing.T) {
	tv := TVar{Name: "t1"}
	s, err := Unify(TList{Elem: Int}, TList{Elem: tv})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tv.Apply(s); got != Int {
		t.Fatalf("t1 resolved to %s, want int", got)
	}

	// Once resolved, the variable is seen as int by later unifications.
	if _, err := Unify(String, tv.Apply(s)); err == nil {
		t.Fatal("expected resolved variable to reject string")
	}
}

func TestUnifyLinksTwoVariables(t *testing.T) {
	a, b := TVar{Name: "t1"}, TVar{Name: "t2"}
	s1, err := Unify(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := Unify(b.Apply(s1), Bool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := s1.Compose(s2)
	if got := a.Apply(s); got != Bool {
		t.Errorf("t1 = %s, want bool", got)
	}
	if got := b.Apply(s); got != Bool {
		t.Errorf("t2 = %s, want bool", got)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	tv := TVar{Name: "t1"}
	if _, err := Unify(tv, TList{Elem: tv}); err == nil {
		t.Fatal("expected infinite type error")
	}
}

func TestUnifyFunctions(t *testing.T) {
	tv := TVar{Name: "t1"}
	f1 := TFunc{Params: []Type{Int, tv}, ReturnType: tv}
	f2 := TFunc{Params: []Type{Int, String}, ReturnType: String}
	s, err := Unify(f1, f2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f1.Apply(s).String(); got != "(int, string) -> string" {
		t.Errorf("unified = %s", got)
	}

	arity := TFunc{Params: []Type{Int}, ReturnType: Void}
	if _, err := Unify(f2, arity); err == nil {
		t.Error("expected arity mismatch")
	}

	badReturn := TFunc{Params: []Type{Int, String}, ReturnType: Int}
	if _, err := Unify(f2, badReturn); err == nil {
		t.Error("expected return type mismatch")
	}
}

func TestUnifyClassesByName(t *testing.T) {
	full := NewClass("Foo")
	full.Fields = []Field{{Name: "bar", Type: Int}}
	ref := TClass{Name: "Foo"}

	if _, err := Unify(full, ref); err != nil {
		t.Fatalf("same name must unify: %v", err)
	}
	if _, err := Unify(full, TClass{Name: "Bar"}); err == nil {
		t.Fatal("different names must not unify")
	}
}

func TestUnifyErrorReportsOuterTypes(t *testing.T) {
	_, err := Unify(TList{Elem: Int}, TList{Elem: String})
	var ue *UnifyError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnifyError, got %T", err)
	}
	if ue.Expected.String() != "List[int]" || ue.Actual.String() != "List[string]" {
		t.Errorf("got expected=%s actual=%s", ue.Expected, ue.Actual)
	}
}

func TestClassMemberLookup(t *testing.T) {
	c := NewClass("Foo")
	c.Fields = []Field{{Name: "x", Type: Int}}
	c.Methods["get"] = TFunc{ReturnType: Int}
	c.StaticMethods["new"] = TFunc{ReturnType: TClass{Name: "Foo"}}

	if _, ok := c.Member("x"); !ok {
		t.Error("field x not found")
	}
	if _, ok := c.Member("get"); !ok {
		t.Error("method get not found")
	}
	if _, ok := c.Member("new"); ok {
		t.Error("static method must not be reachable as a member")
	}
	if _, ok := c.StaticMethod("new"); !ok {
		t.Error("static method new not found")
	}
}
