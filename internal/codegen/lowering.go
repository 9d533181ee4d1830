package codegen

import (
	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/config"
	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/ir"
	"github.com/funvibe/elz/internal/typesystem"
)

// lowering holds the state for one function body or global initializer.
type lowering struct {
	g      *Generator
	module *ir.Module
	locals map[string]ir.Type
}

func (g *Generator) newLowering(module *ir.Module) *lowering {
	return &lowering{g: g, module: module, locals: make(map[string]ir.Type)}
}

func (l *lowering) lowerBlock(block *ast.BlockStatement) (*ir.Block, error) {
	out := &ir.Block{Statements: make([]ir.Stmt, 0, len(block.Statements))}
	for _, stmt := range block.Statements {
		s, err := l.lowerStatement(stmt)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, s)
	}
	return out, nil
}

func (l *lowering) lowerStatement(stmt ast.Statement) (ir.Stmt, error) {
	switch s := stmt.(type) {
	case *ast.ReturnStatement:
		if s.Value == nil {
			return &ir.Return{}, nil
		}
		value, err := l.lowerExpression(s.Value)
		if err != nil {
			return nil, err
		}
		return &ir.Return{Value: value}, nil

	case *ast.VariableDeclaration:
		value, err := l.lowerExpression(s.Value)
		if err != nil {
			return nil, err
		}
		t := lowerType(s.Type)
		l.locals[s.Name] = t
		return &ir.Local{Name: s.Name, Type: t, Value: value}, nil

	case *ast.CallStatement:
		call, err := l.lowerExpression(s.Call)
		if err != nil {
			return nil, err
		}
		return &ir.ExprStmt{Expr: call}, nil
	}
	panic("unimplemented: lowering statement " + stmt.TokenLiteral())
}

func (l *lowering) lowerExpression(expr ast.Expression) (ir.Expr, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return &ir.IntLit{Value: e.Value}, nil
	case *ast.FloatLiteral:
		return &ir.FloatLit{Value: e.Value}, nil
	case *ast.BooleanLiteral:
		return &ir.BoolLit{Value: e.Value}, nil
	case *ast.StringLiteral:
		return &ir.StringLit{Value: e.Value}, nil

	case *ast.ListLiteral:
		elems, err := l.lowerAll(e.Elements)
		if err != nil {
			return nil, err
		}
		return &ir.ListLit{Elements: elems}, nil

	case *ast.Identifier:
		if _, ok := l.locals[e.Value]; ok {
			return &ir.Ref{Name: e.Value, Kind: ir.LocalRef}, nil
		}
		if _, ok := l.module.Signature(e.Value); ok {
			return &ir.Ref{Name: e.Value, Kind: ir.GlobalRef}, nil
		}
		return nil, diagnostics.UnresolvedReference(e.Token, e.Value)

	case *ast.CallExpression:
		return l.lowerCall(e)

	case *ast.MemberExpression:
		receiver, err := l.lowerExpression(e.Left)
		if err != nil {
			return nil, err
		}
		return &ir.Member{Receiver: receiver, Name: e.Member.Value}, nil

	case *ast.StaticAccessExpression:
		return &ir.FuncRef{Owner: e.ClassName.Value, Name: e.Member.Value}, nil

	case *ast.ClassConstruction:
		out := &ir.Construct{Type: e.ClassName.Value, Fields: make([]ir.FieldValue, len(e.Fields))}
		for i, fi := range e.Fields {
			value, err := l.lowerExpression(fi.Value)
			if err != nil {
				return nil, err
			}
			out.Fields[i] = ir.FieldValue{Name: fi.Name, Value: value}
		}
		return out, nil

	case *ast.InfixExpression:
		left, err := l.lowerExpression(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := l.lowerExpression(e.Right)
		if err != nil {
			return nil, err
		}
		return &ir.Binary{Op: e.Operator, Left: left, Right: right}, nil
	}
	panic("unimplemented: lowering expression " + expr.TokenLiteral())
}

func (l *lowering) lowerAll(exprs []ast.Expression) ([]ir.Expr, error) {
	out := make([]ir.Expr, len(exprs))
	for i, e := range exprs {
		lowered, err := l.lowerExpression(e)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}

// lowerCall lowers a call. A method call `recv.m(args)` becomes a call of
// the owner's function with the receiver as first argument.
func (l *lowering) lowerCall(call *ast.CallExpression) (ir.Expr, error) {
	args, err := l.lowerAll(call.Arguments)
	if err != nil {
		return nil, err
	}

	me, ok := call.Callee.(*ast.MemberExpression)
	if !ok {
		callee, err := l.lowerExpression(call.Callee)
		if err != nil {
			return nil, err
		}
		return &ir.Call{Callee: callee, Args: args}, nil
	}

	receiver, err := l.lowerExpression(me.Left)
	if err != nil {
		return nil, err
	}
	var callee ir.Expr = &ir.Member{Receiver: receiver, Name: me.Member.Value}
	if owner := l.receiverClass(me.Left); owner != "" {
		callee = &ir.FuncRef{Owner: owner, Name: me.Member.Value}
	}
	return &ir.Call{Callee: callee, Args: append([]ir.Expr{receiver}, args...)}, nil
}

// receiverClass finds the class of a method receiver, or "" when it cannot
// be told without the backend's help.
func (l *lowering) receiverClass(expr ast.Expression) string {
	if t, ok := l.g.types[expr]; ok {
		if c, ok := t.(typesystem.TClass); ok {
			return c.Name
		}
	}

	switch e := expr.(type) {
	case *ast.Identifier:
		if t, ok := l.locals[e.Value]; ok {
			return l.className(t)
		}
		if sig, ok := l.module.Signature(e.Value); ok && sig.Kind == ir.VariableSignature {
			return l.className(sig.Type)
		}
	case *ast.CallExpression:
		var name string
		switch callee := e.Callee.(type) {
		case *ast.Identifier:
			if _, local := l.locals[callee.Value]; local {
				return ""
			}
			name = callee.Value
		case *ast.StaticAccessExpression:
			name = ir.QualifiedName(callee.ClassName.Value, callee.Member.Value)
		default:
			return ""
		}
		if sig, ok := l.module.Signature(name); ok && sig.Kind == ir.FunctionSignature {
			return l.className(sig.Type)
		}
	}
	return ""
}

func (l *lowering) className(t ir.Type) string {
	named, ok := t.(ir.Named)
	if !ok || config.IsPrimitiveTypeName(named.Name) || l.g.config.IsIntrinsicType(named.Name) {
		return ""
	}
	return named.Name
}
