package analyzer

import (
	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/config"
	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/symbols"
	"github.com/funvibe/elz/internal/typesystem"
)

// inferExpression infers the type of expr and records it in the TypeMap.
func (a *Analyzer) inferExpression(ctx bodyContext, expr ast.Expression) (typesystem.Type, error) {
	t, err := a.inferNode(ctx, expr)
	if err != nil {
		return nil, err
	}
	t = a.inferCtx.Resolve(t)
	a.TypeMap[expr] = t
	return t, nil
}

func (a *Analyzer) inferNode(ctx bodyContext, expr ast.Expression) (typesystem.Type, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return typesystem.Int, nil
	case *ast.FloatLiteral:
		return typesystem.Float, nil
	case *ast.BooleanLiteral:
		return typesystem.Bool, nil
	case *ast.StringLiteral:
		return typesystem.String, nil
	case *ast.ListLiteral:
		return a.inferList(ctx, e)
	case *ast.Identifier:
		return a.inferIdentifier(ctx, e)
	case *ast.CallExpression:
		return a.inferCall(ctx, e)
	case *ast.MemberExpression:
		return a.inferMember(ctx, e)
	case *ast.StaticAccessExpression:
		return a.inferStaticAccess(ctx, e)
	case *ast.ClassConstruction:
		return a.inferConstruction(ctx, e)
	case *ast.InfixExpression:
		return a.inferInfix(ctx, e)
	default:
		unimplemented("expression " + expr.TokenLiteral())
		return nil, nil
	}
}

func (a *Analyzer) inferList(ctx bodyContext, list *ast.ListLiteral) (typesystem.Type, error) {
	if len(list.Elements) == 0 {
		return typesystem.TList{Elem: a.inferCtx.FreshVar()}, nil
	}
	elem, err := a.inferExpression(ctx, list.Elements[0])
	if err != nil {
		return nil, err
	}
	for _, el := range list.Elements[1:] {
		t, err := a.inferExpression(ctx, el)
		if err != nil {
			return nil, err
		}
		elem, err = a.inferCtx.Unify(el.GetToken(), elem, t)
		if err != nil {
			return nil, err
		}
	}
	return typesystem.TList{Elem: elem}, nil
}

func (a *Analyzer) inferIdentifier(ctx bodyContext, ident *ast.Identifier) (typesystem.Type, error) {
	if sym, ok := ctx.scope.Find(ident.Value); ok {
		// A class is reachable through construction and Class::name only.
		if sym.Kind == symbols.ClassSymbol {
			return nil, diagnostics.NotAValue(ident.Token, sym.Kind.String(), ident.Value)
		}
		return sym.Type, nil
	}
	// Sibling static methods are reachable only as Class::name.
	if ctx.class != nil && ctx.class.HasStaticMethod(ident.Value) {
		return nil, diagnostics.StaticMemberNotVisible(ident.Token, ctx.class.Name, ident.Value)
	}
	return nil, diagnostics.UndefinedName(ident.Token, ident.Value)
}

func (a *Analyzer) inferCall(ctx bodyContext, call *ast.CallExpression) (typesystem.Type, error) {
	calleeType, err := a.inferExpression(ctx, call.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeType.(typesystem.TFunc)
	if !ok {
		return nil, diagnostics.NotCallable(call.Token, calleeName(call.Callee), calleeType)
	}
	if len(fn.Params) != len(call.Arguments) {
		return nil, diagnostics.ArityMismatch(call.Token, len(fn.Params), len(call.Arguments))
	}
	for i, arg := range call.Arguments {
		t, err := a.inferExpression(ctx, arg)
		if err != nil {
			return nil, err
		}
		if _, err := a.inferCtx.Unify(arg.GetToken(), fn.Params[i], t); err != nil {
			return nil, err
		}
	}
	return fn.ReturnType, nil
}

// calleeName renders a callee for diagnostics.
func calleeName(callee ast.Expression) string {
	switch c := callee.(type) {
	case *ast.Identifier:
		return c.Value
	case *ast.MemberExpression:
		return calleeName(c.Left) + "." + c.Member.Value
	case *ast.StaticAccessExpression:
		return c.ClassName.Value + "::" + c.Member.Value
	default:
		return callee.TokenLiteral()
	}
}

// inferMember resolves `value.name` among fields and instance methods.
func (a *Analyzer) inferMember(ctx bodyContext, me *ast.MemberExpression) (typesystem.Type, error) {
	left, err := a.inferExpression(ctx, me.Left)
	if err != nil {
		return nil, err
	}
	class, ok := a.classDefinition(left)
	if !ok {
		return nil, diagnostics.NoSuchMember(me.Member.Token, left.String(), me.Member.Value)
	}
	t, ok := class.Member(me.Member.Value)
	if !ok {
		return nil, diagnostics.NoSuchMember(me.Member.Token, class.Name, me.Member.Value)
	}
	return t, nil
}

// inferStaticAccess resolves `Class::name` among static methods only.
func (a *Analyzer) inferStaticAccess(ctx bodyContext, sa *ast.StaticAccessExpression) (typesystem.Type, error) {
	name := sa.ClassName.Value
	sym, err := ctx.scope.Lookup(sa.ClassName.Token, name)
	if err != nil {
		return nil, err
	}
	class, ok := sym.Type.(typesystem.TClass)
	if !ok {
		return nil, diagnostics.NotAClass(sa.ClassName.Token, name)
	}
	fn, ok := class.StaticMethod(sa.Member.Value)
	if !ok {
		return nil, diagnostics.NoSuchMember(sa.Member.Token, name, sa.Member.Value)
	}
	return fn, nil
}

// classDefinition returns the full definition of a class-typed value.
// Annotated class types carry only a name; the definition lives in the
// root scope.
func (a *Analyzer) classDefinition(t typesystem.Type) (typesystem.TClass, bool) {
	ref, ok := t.(typesystem.TClass)
	if !ok {
		return typesystem.TClass{}, false
	}
	sym, found := a.symbolTable.Find(ref.Name)
	if !found {
		return ref, true
	}
	if def, ok := sym.Type.(typesystem.TClass); ok {
		return def, true
	}
	return ref, true
}

// inferConstruction checks `Name { field: value, ... }`. A class can only
// be built inside its own methods and static methods, and every declared
// field must be initialized exactly once.
func (a *Analyzer) inferConstruction(ctx bodyContext, cc *ast.ClassConstruction) (typesystem.Type, error) {
	name := cc.ClassName.Value
	sym, ok := ctx.scope.Find(name)
	if !ok {
		if isBuiltinTypeName(name) {
			return nil, diagnostics.NotAClass(cc.ClassName.Token, name)
		}
		return nil, diagnostics.UndefinedName(cc.ClassName.Token, name)
	}
	class, ok := sym.Type.(typesystem.TClass)
	if !ok {
		return nil, diagnostics.NotAClass(cc.ClassName.Token, name)
	}
	if ctx.class == nil || ctx.class.Name != class.Name {
		return nil, diagnostics.InvalidConstructionContext(cc.Token, name)
	}

	initialized := make(map[string]bool, len(cc.Fields))
	for _, fi := range cc.Fields {
		if initialized[fi.Name] {
			return nil, diagnostics.Redefinition(fi.Token, fi.Name)
		}
		initialized[fi.Name] = true

		fieldType, ok := class.Field(fi.Name)
		if !ok {
			return nil, diagnostics.UnknownFieldInit(fi.Token, name, fi.Name)
		}
		t, err := a.inferExpression(ctx, fi.Value)
		if err != nil {
			return nil, err
		}
		if _, err := a.inferCtx.Unify(fi.Value.GetToken(), fieldType, t); err != nil {
			return nil, err
		}
	}
	for _, field := range class.FieldNames() {
		if !initialized[field] {
			return nil, diagnostics.MissingFieldInit(cc.Token, field)
		}
	}
	return typesystem.TClass{Name: class.Name}, nil
}

func isBuiltinTypeName(name string) bool {
	return name == config.VoidTypeName || name == config.ListTypeName || config.IsPrimitiveTypeName(name)
}

func (a *Analyzer) inferInfix(ctx bodyContext, ie *ast.InfixExpression) (typesystem.Type, error) {
	left, err := a.inferExpression(ctx, ie.Left)
	if err != nil {
		return nil, err
	}
	right, err := a.inferExpression(ctx, ie.Right)
	if err != nil {
		return nil, err
	}

	switch ie.Operator {
	case "+", "-", "*", "/", "%":
		return a.inferCtx.Unify(ie.Right.GetToken(), left, right)
	case "==", "!=", "<", "<=", ">", ">=":
		if _, err := a.inferCtx.Unify(ie.Right.GetToken(), left, right); err != nil {
			return nil, err
		}
		return typesystem.Bool, nil
	case "&&", "||":
		if _, err := a.inferCtx.Unify(ie.Left.GetToken(), typesystem.Bool, left); err != nil {
			return nil, err
		}
		if _, err := a.inferCtx.Unify(ie.Right.GetToken(), typesystem.Bool, right); err != nil {
			return nil, err
		}
		return typesystem.Bool, nil
	default:
		return nil, diagnostics.UnknownOperator(ie.Token, ie.Operator)
	}
}
