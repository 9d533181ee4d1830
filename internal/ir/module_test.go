package ir

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushRequiresSignature(t *testing.T) {
	m := NewModule("main")
	err := m.PushFunction(&Function{Name: "main", ReturnType: Void{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotRegistered))
	assert.Empty(t, m.Definitions())

	err = m.PushVariable(&Variable{Name: "x", Type: Named{Name: "int"}, Init: &IntLit{Value: 1}})
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestRememberThenPush(t *testing.T) {
	m := NewModule("main")
	fn := &Function{Name: "add", Params: []Param{{Name: "a", Type: Named{Name: "int"}}}, ReturnType: Named{Name: "int"}}
	m.Remember(fn.Signature())
	m.Remember(Signature{Kind: VariableSignature, Name: "x", Type: Named{Name: "int"}})

	require.NoError(t, m.PushVariable(&Variable{Name: "x", Type: Named{Name: "int"}, Init: &IntLit{Value: 1}}))
	require.NoError(t, m.PushFunction(fn))

	defs := m.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "x", defs[0].DefinitionName())
	assert.Equal(t, "add", defs[1].DefinitionName())
	assert.Len(t, m.Functions(), 1)
	assert.Len(t, m.Variables(), 1)
	assert.Empty(t, m.Types())
}

func TestPushTypeRegistersOwnedFunctions(t *testing.T) {
	m := NewModule("main")
	m.PushType(&TypeDef{Name: "Foo", Fields: []Field{{Name: "a", Type: Named{Name: "int"}}}}, []Signature{
		{Kind: FunctionSignature, Name: "new", Type: Named{Name: "Foo"}},
	})

	sig, ok := m.Signature("Foo::new")
	require.True(t, ok)
	assert.Equal(t, "Foo", sig.Owner)
	assert.Equal(t, "Foo::new(): Foo", sig.String())

	require.NoError(t, m.PushFunction(&Function{Name: "new", Owner: "Foo", ReturnType: Named{Name: "Foo"}}))
	fn, ok := m.Function("Foo::new")
	require.True(t, ok)
	assert.Equal(t, "Foo", fn.Owner)
	require.Len(t, m.Types(), 1)
	assert.Equal(t, "Foo", m.Types()[0].Name)
}

func TestModuleIdentity(t *testing.T) {
	a, b := NewModule("a"), NewModule("b")
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "void", Void{}.String())
	assert.Equal(t, "List[List[int]]", List{Elem: List{Elem: Named{Name: "int"}}}.String())
	assert.Equal(t, "Foo::bar", QualifiedName("Foo", "bar"))
	assert.Equal(t, "bar", QualifiedName("", "bar"))

	sig := Signature{Kind: FunctionSignature, Name: "f", Params: []Type{Named{Name: "int"}, Named{Name: "bool"}}, Type: Void{}}
	assert.Equal(t, "f(int, bool): void", sig.String())
}
