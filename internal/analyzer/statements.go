package analyzer

import (
	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/symbols"
	"github.com/funvibe/elz/internal/typesystem"
)

// checkBlock processes statements in textual order. Locals become visible
// to the statements after their declaration only.
func (a *Analyzer) checkBlock(ctx bodyContext, block *ast.BlockStatement) error {
	for _, stmt := range block.Statements {
		if err := a.checkStatement(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) checkStatement(ctx bodyContext, stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ReturnStatement:
		var typ typesystem.Type = typesystem.Void
		if s.Value != nil {
			t, err := a.inferExpression(ctx, s.Value)
			if err != nil {
				return err
			}
			typ = t
		}
		_, err := a.inferCtx.Unify(s.Token, ctx.returnType, typ)
		return err

	case *ast.VariableDeclaration:
		declared := typesystem.FromAnnotation(s.Type)
		typ, err := a.inferExpression(ctx, s.Value)
		if err != nil {
			return err
		}
		if _, err := a.inferCtx.Unify(s.Token, declared, typ); err != nil {
			return err
		}
		return ctx.scope.Define(s.Token, s.Name, declared, symbols.VariableSymbol)

	case *ast.CallStatement:
		// A call used as a statement must not discard a value.
		typ, err := a.inferExpression(ctx, s.Call)
		if err != nil {
			return err
		}
		_, err = a.inferCtx.Unify(s.Token, typesystem.Void, typ)
		return err
	}
	return nil
}
