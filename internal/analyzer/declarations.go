package analyzer

import (
	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/symbols"
	"github.com/funvibe/elz/internal/typesystem"
)

// bodyContext describes where an expression is being checked.
type bodyContext struct {
	scope      *symbols.SymbolTable
	class      *typesystem.TClass // Enclosing class of a member body, nil elsewhere
	returnType typesystem.Type    // Declared return type, nil outside functions
}

func (a *Analyzer) registerDeclaration(decl ast.Declaration) error {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		return a.symbolTable.Define(d.Token, d.Name, typesystem.FromAnnotation(d.Type), symbols.VariableSymbol)
	case *ast.FunctionDeclaration:
		return a.symbolTable.Define(d.Token, d.Name, typesystem.FunctionType(d), symbols.FunctionSymbol)
	case *ast.ClassDeclaration:
		return a.symbolTable.Define(d.Token, d.Name, typesystem.ClassType(d), symbols.ClassSymbol)
	case *ast.ImportDeclaration, *ast.TraitDeclaration:
		return nil
	default:
		return nil
	}
}

func (a *Analyzer) checkDeclaration(decl ast.Declaration) error {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		return a.checkGlobalVariable(d)
	case *ast.FunctionDeclaration:
		return a.checkFunction(bodyContext{scope: a.symbolTable}, d)
	case *ast.ClassDeclaration:
		return a.checkClass(d)
	case *ast.ImportDeclaration:
		return nil
	case *ast.TraitDeclaration:
		unimplemented("trait " + d.Name)
	}
	return nil
}

func (a *Analyzer) checkGlobalVariable(v *ast.VariableDeclaration) error {
	ctx := bodyContext{scope: a.symbolTable}
	typ, err := a.inferExpression(ctx, v.Value)
	if err != nil {
		return err
	}
	// The initializer pinpoints a mismatch better than the declaration does.
	_, err = a.inferCtx.Unify(v.Value.GetToken(), typesystem.FromAnnotation(v.Type), typ)
	return err
}

// checkFunction checks a function or member body in a fresh scope
// enclosed by ctx.scope, with the parameters bound.
func (a *Analyzer) checkFunction(ctx bodyContext, fn *ast.FunctionDeclaration) error {
	scope := symbols.NewEnclosedSymbolTable(ctx.scope)
	for _, p := range fn.Parameters {
		if err := scope.Define(p.Token, p.Name, typesystem.FromAnnotation(p.Type), symbols.ParameterSymbol); err != nil {
			return err
		}
	}

	inner := bodyContext{
		scope:      scope,
		class:      ctx.class,
		returnType: typesystem.FromAnnotation(fn.ReturnType),
	}

	switch body := fn.Body.(type) {
	case nil:
		// foo(): void; declares a function implemented elsewhere.
		return nil
	case *ast.ExpressionBody:
		typ, err := a.inferExpression(inner, body.Expression)
		if err != nil {
			return err
		}
		_, err = a.inferCtx.Unify(body.Expression.GetToken(), inner.returnType, typ)
		return err
	case *ast.BlockStatement:
		return a.checkBlock(inner, body)
	}
	return nil
}

// checkClass validates the field list and every member body.
//
// Member bodies see the global scope only: fields are not in scope inside
// them and no receiver is bound. The class scope built here exists to
// reject duplicate members.
func (a *Analyzer) checkClass(cd *ast.ClassDeclaration) error {
	sym, err := a.symbolTable.Lookup(cd.Token, cd.Name)
	if err != nil {
		return err
	}
	class, ok := sym.Type.(typesystem.TClass)
	if !ok {
		return diagnostics.NotAClass(cd.Token, cd.Name)
	}

	classScope := symbols.NewEnclosedSymbolTable(a.symbolTable)
	for _, f := range cd.Fields() {
		if err := classScope.Define(f.Token, f.Name, typesystem.FromAnnotation(f.Type), symbols.FieldSymbol); err != nil {
			return err
		}
	}

	memberNames := make(map[string]bool)
	for _, f := range cd.Fields() {
		memberNames[f.Name] = true
	}
	for _, member := range cd.Members {
		var fn *ast.FunctionDeclaration
		switch m := member.(type) {
		case *ast.MethodMember:
			fn = m.Function
		case *ast.StaticMethodMember:
			fn = m.Function
		default:
			continue
		}
		if memberNames[fn.Name] {
			return diagnostics.Redefinition(fn.Token, fn.Name)
		}
		memberNames[fn.Name] = true
	}

	ctx := bodyContext{scope: a.symbolTable, class: &class}
	for _, member := range cd.Members {
		switch m := member.(type) {
		case *ast.MethodMember:
			if err := a.checkFunction(ctx, m.Function); err != nil {
				return err
			}
		case *ast.StaticMethodMember:
			if err := a.checkFunction(ctx, m.Function); err != nil {
				return err
			}
		}
	}
	return nil
}
