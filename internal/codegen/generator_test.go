package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/elz/internal/analyzer"
	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/config"
	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/ir"
	"github.com/funvibe/elz/internal/symbols"
)

var (
	typ   = ast.NewType
	ident = ast.NewIdent
	call  = ast.NewCall
)

func exprFn(name string, params []*ast.Parameter, ret ast.Type, e ast.Expression) *ast.FunctionDeclaration {
	return ast.NewFunction(name, params, ret, ast.NewExprBody(e))
}

func generate(t *testing.T, program *ast.Program) *ir.Module {
	t.Helper()
	module, err := New(config.Default()).Generate(program)
	require.NoError(t, err)
	return module
}

// checkAndGenerate runs the analyzer first and lowers with its types.
func checkAndGenerate(t *testing.T, program *ast.Program) *ir.Module {
	t.Helper()
	a := analyzer.New(symbols.NewSymbolTable())
	require.NoError(t, a.Analyze(program))
	module, err := New(config.Default()).WithTypes(a.TypeMap).Generate(program)
	require.NoError(t, err)
	return module
}

func fooClass() *ast.ClassDeclaration {
	return ast.NewClass("Foo",
		ast.NewField("a", typ("int")),
		ast.NewStaticMethod(exprFn("new", nil, typ("Foo"),
			ast.NewConstruction("Foo", ast.NewFieldInit("a", ast.NewInt(1))))),
		ast.NewMethod(exprFn("add", []*ast.Parameter{ast.NewParam("n", typ("int"))}, typ("int"), ident("n"))),
	)
}

func TestForwardReferenceIsResolved(t *testing.T) {
	// main(): int = helper(); helper(): int = 1;
	module := generate(t, ast.NewProgram(
		exprFn("main", nil, typ("int"), call(ident("helper"))),
		exprFn("helper", nil, typ("int"), ast.NewInt(1)),
	))

	fns := module.Functions()
	require.Len(t, fns, 2)
	assert.Equal(t, "main", fns[0].Name)
	assert.Equal(t, "helper", fns[1].Name)

	ret := fns[0].Body.Statements[0].(*ir.Return)
	c := ret.Value.(*ir.Call)
	assert.Equal(t, &ir.Ref{Name: "helper", Kind: ir.GlobalRef}, c.Callee)
	assert.Empty(t, c.Args)
}

func TestVariableLowering(t *testing.T) {
	module := generate(t, ast.NewProgram(
		ast.NewVariable("x", typ("List", typ("int")), ast.NewList(ast.NewInt(1), ast.NewInt(2))),
		ast.NewVariable("y", typ("int"), ast.NewInfix(ident("z"), "+", ast.NewInt(1))),
		ast.NewVariable("z", typ("int"), ast.NewInt(3)),
	))

	vars := module.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, ir.List{Elem: ir.Named{Name: "int"}}, vars[0].Type)
	assert.Equal(t, &ir.ListLit{Elements: []ir.Expr{&ir.IntLit{Value: 1}, &ir.IntLit{Value: 2}}}, vars[0].Init)
	assert.Equal(t, &ir.Binary{
		Op:    "+",
		Left:  &ir.Ref{Name: "z", Kind: ir.GlobalRef},
		Right: &ir.IntLit{Value: 1},
	}, vars[1].Init)
}

func TestBuiltinFunctionIsSkipped(t *testing.T) {
	puts := ast.NewFunction("puts", []*ast.Parameter{ast.NewParam("s", typ("string"))}, typ("void"), nil)
	puts.Tag = ast.TagBuiltin
	module := generate(t, ast.NewProgram(
		puts,
		ast.NewFunction("main", nil, typ("void"), ast.NewBlock(
			ast.NewCallStatement(call(ident("puts"), ast.NewString("hi"))),
		)),
	))

	fns := module.Functions()
	require.Len(t, fns, 1)
	assert.Equal(t, "main", fns[0].Name)
	_, ok := module.Signature("puts")
	assert.True(t, ok, "builtins stay callable")

	stmt := fns[0].Body.Statements[0].(*ir.ExprStmt)
	assert.Equal(t, &ir.Call{
		Callee: &ir.Ref{Name: "puts", Kind: ir.GlobalRef},
		Args:   []ir.Expr{&ir.StringLit{Value: "hi"}},
	}, stmt.Expr)
}

func TestForwardDeclarationHasNoBody(t *testing.T) {
	module := generate(t, ast.NewProgram(
		ast.NewFunction("ext", nil, typ("int"), nil),
	))
	fn, ok := module.Function("ext")
	require.True(t, ok)
	assert.True(t, fn.IsDeclaration)
	assert.Nil(t, fn.Body)
}

func TestBlockLowering(t *testing.T) {
	// f(x: int): int { y: int = x; g(); return y; } g(): void { return; }
	module := generate(t, ast.NewProgram(
		ast.NewFunction("f", []*ast.Parameter{ast.NewParam("x", typ("int"))}, typ("int"), ast.NewBlock(
			ast.NewVariable("y", typ("int"), ident("x")),
			ast.NewCallStatement(call(ident("g"))),
			ast.NewReturn(ident("y")),
		)),
		ast.NewFunction("g", nil, typ("void"), ast.NewBlock(ast.NewReturn(nil))),
	))

	f, ok := module.Function("f")
	require.True(t, ok)
	assert.Equal(t, []ir.Stmt{
		&ir.Local{Name: "y", Type: ir.Named{Name: "int"}, Value: &ir.Ref{Name: "x", Kind: ir.LocalRef}},
		&ir.ExprStmt{Expr: &ir.Call{Callee: &ir.Ref{Name: "g", Kind: ir.GlobalRef}, Args: []ir.Expr{}}},
		&ir.Return{Value: &ir.Ref{Name: "y", Kind: ir.LocalRef}},
	}, f.Body.Statements)

	g, _ := module.Function("g")
	assert.Equal(t, ir.Void{}, g.ReturnType)
	assert.Equal(t, []ir.Stmt{&ir.Return{}}, g.Body.Statements)
}

func TestParameterShadowsGlobal(t *testing.T) {
	module := generate(t, ast.NewProgram(
		ast.NewVariable("x", typ("int"), ast.NewInt(1)),
		exprFn("f", []*ast.Parameter{ast.NewParam("x", typ("int"))}, typ("int"), ident("x")),
	))
	f, _ := module.Function("f")
	ret := f.Body.Statements[0].(*ir.Return)
	assert.Equal(t, &ir.Ref{Name: "x", Kind: ir.LocalRef}, ret.Value)
}

func TestUnresolvedReference(t *testing.T) {
	_, err := New(config.Default()).Generate(ast.NewProgram(
		exprFn("f", nil, typ("int"), ident("missing")),
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostics.Code(diagnostics.ErrUnresolvedReference))
}

func TestMethodErasure(t *testing.T) {
	class := fooClass()
	module := generate(t, ast.NewProgram(class))

	types := module.Types()
	require.Len(t, types, 1)
	assert.Equal(t, &ir.TypeDef{Name: "Foo", Fields: []ir.Field{{Name: "a", Type: ir.Named{Name: "int"}}}}, types[0])

	newFn, ok := module.Function("Foo::new")
	require.True(t, ok)
	assert.Equal(t, "Foo", newFn.Owner)
	assert.Empty(t, newFn.Params)
	ret := newFn.Body.Statements[0].(*ir.Return)
	assert.Equal(t, &ir.Construct{
		Type:   "Foo",
		Fields: []ir.FieldValue{{Name: "a", Value: &ir.IntLit{Value: 1}}},
	}, ret.Value)

	add, ok := module.Function("Foo::add")
	require.True(t, ok)
	assert.Equal(t, []ir.Param{
		{Name: "self", Type: ir.Named{Name: "Foo"}},
		{Name: "n", Type: ir.Named{Name: "int"}},
	}, add.Params)

	// The source declaration keeps its own parameter list.
	method := class.Members[2].(*ast.MethodMember)
	assert.Len(t, method.Function.Parameters, 1)

	// Type first, then its functions in member order.
	defs := module.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, []string{"Foo", "Foo::new", "Foo::add"},
		[]string{defs[0].DefinitionName(), defs[1].DefinitionName(), defs[2].DefinitionName()})
}

func TestConfiguredReceiverName(t *testing.T) {
	cfg := config.Default()
	cfg.ReceiverName = "this"
	module, err := New(cfg).Generate(ast.NewProgram(fooClass()))
	require.NoError(t, err)

	add, ok := module.Function("Foo::add")
	require.True(t, ok)
	assert.Equal(t, "this", add.Params[0].Name)
}

func TestIntrinsicClassesAreSkipped(t *testing.T) {
	var decls []ast.Declaration
	for _, name := range config.DefaultIntrinsicTypes {
		decls = append(decls, ast.NewClass(name,
			ast.NewMethod(exprFn("id", nil, typ("int"), ast.NewInt(0))),
		))
	}
	decls = append(decls, ast.NewClass("string"))

	module := generate(t, ast.NewProgram(decls...))
	require.Len(t, module.Definitions(), 1)
	assert.Equal(t, "string", module.Types()[0].Name)
}

func TestMethodCallWithDeclaredReceiver(t *testing.T) {
	// foo: Foo = Foo::new(); n: int = foo.add(2);
	module := generate(t, ast.NewProgram(
		fooClass(),
		ast.NewVariable("foo", typ("Foo"), call(ast.NewStaticAccess("Foo", "new"))),
		ast.NewVariable("n", typ("int"), call(ast.NewMember(ident("foo"), "add"), ast.NewInt(2))),
	))

	vars := module.Variables()
	require.Len(t, vars, 2)
	assert.Equal(t, &ir.Call{Callee: &ir.FuncRef{Owner: "Foo", Name: "new"}, Args: []ir.Expr{}}, vars[0].Init)
	assert.Equal(t, &ir.Call{
		Callee: &ir.FuncRef{Owner: "Foo", Name: "add"},
		Args:   []ir.Expr{&ir.Ref{Name: "foo", Kind: ir.GlobalRef}, &ir.IntLit{Value: 2}},
	}, vars[1].Init)
}

func TestMethodCallOnReceiverParameter(t *testing.T) {
	// twice(f: Foo): int = f.add(f.add(1));
	inner := call(ast.NewMember(ident("f"), "add"), ast.NewInt(1))
	module := generate(t, ast.NewProgram(
		fooClass(),
		exprFn("twice", []*ast.Parameter{ast.NewParam("f", typ("Foo"))}, typ("int"),
			call(ast.NewMember(ident("f"), "add"), inner)),
	))

	twice, ok := module.Function("twice")
	require.True(t, ok)
	outer := twice.Body.Statements[0].(*ir.Return).Value.(*ir.Call)
	assert.Equal(t, &ir.FuncRef{Owner: "Foo", Name: "add"}, outer.Callee)
	require.Len(t, outer.Args, 2)
	assert.Equal(t, &ir.Ref{Name: "f", Kind: ir.LocalRef}, outer.Args[0])
}

func TestMethodCallWithUnknownReceiver(t *testing.T) {
	// Without inferred types the owner of `holder.foo.add` is left to the backend.
	module := generate(t, ast.NewProgram(
		ast.NewClass("Holder", ast.NewField("foo", typ("Foo"))),
		fooClass(),
		exprFn("run", []*ast.Parameter{ast.NewParam("holder", typ("Holder"))}, typ("int"),
			call(ast.NewMember(ast.NewMember(ident("holder"), "foo"), "add"), ast.NewInt(1))),
	))

	run, _ := module.Function("run")
	c := run.Body.Statements[0].(*ir.Return).Value.(*ir.Call)
	receiver := &ir.Member{Receiver: &ir.Ref{Name: "holder", Kind: ir.LocalRef}, Name: "foo"}
	assert.Equal(t, &ir.Member{Receiver: receiver, Name: "add"}, c.Callee)
	assert.Equal(t, []ir.Expr{receiver, &ir.IntLit{Value: 1}}, c.Args)
}

func TestMethodCallResolvedByInferredTypes(t *testing.T) {
	module := checkAndGenerate(t, ast.NewProgram(
		ast.NewClass("Holder", ast.NewField("foo", typ("Foo"))),
		fooClass(),
		exprFn("run", []*ast.Parameter{ast.NewParam("holder", typ("Holder"))}, typ("int"),
			call(ast.NewMember(ast.NewMember(ident("holder"), "foo"), "add"), ast.NewInt(1))),
	))

	run, _ := module.Function("run")
	c := run.Body.Statements[0].(*ir.Return).Value.(*ir.Call)
	assert.Equal(t, &ir.FuncRef{Owner: "Foo", Name: "add"}, c.Callee)
}

func TestMethodCallBeforeClassDeclaration(t *testing.T) {
	// n: int = Foo::new().add(1); class Foo {...}
	module := generate(t, ast.NewProgram(
		ast.NewVariable("n", typ("int"),
			call(ast.NewMember(call(ast.NewStaticAccess("Foo", "new")), "add"), ast.NewInt(1))),
		fooClass(),
	))

	vars := module.Variables()
	require.Len(t, vars, 1)
	receiver := &ir.Call{Callee: &ir.FuncRef{Owner: "Foo", Name: "new"}, Args: []ir.Expr{}}
	assert.Equal(t, &ir.Call{
		Callee: &ir.FuncRef{Owner: "Foo", Name: "add"},
		Args:   []ir.Expr{receiver, &ir.IntLit{Value: 1}},
	}, vars[0].Init)
}

func TestMemberSignaturesRememberedBeforeLowering(t *testing.T) {
	module := generate(t, ast.NewProgram(
		fooClass(),
		ast.NewClass(config.DefaultIntrinsicTypes[0],
			ast.NewMethod(exprFn("id", nil, typ("int"), ast.NewInt(0)))),
	))

	sig, ok := module.Signature("Foo::add")
	require.True(t, ok)
	assert.Equal(t, "Foo", sig.Owner)
	assert.Equal(t, []ir.Type{ir.Named{Name: "Foo"}, ir.Named{Name: "int"}}, sig.Params)
	_, ok = module.Signature(ir.QualifiedName(config.DefaultIntrinsicTypes[0], "id"))
	assert.False(t, ok)
}

func TestTraitAbortsLowering(t *testing.T) {
	program := ast.NewProgram(&ast.TraitDeclaration{Name: "Show"})
	assert.PanicsWithValue(t, "unimplemented: lowering trait Show", func() {
		_, _ = New(config.Default()).Generate(program)
	})
}

func TestModuleNameFromProgram(t *testing.T) {
	program := ast.NewProgram()
	program.File = "main.elz"
	module := generate(t, program)
	assert.Equal(t, "main.elz", module.Name)
	assert.Empty(t, module.Definitions())
}
