// Package codegen lowers a checked program tree into an ir.Module.
package codegen

import (
	"errors"
	"fmt"

	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/config"
	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/ir"
	"github.com/funvibe/elz/internal/token"
	"github.com/funvibe/elz/internal/typesystem"
)

// Generator lowers programs that already passed semantic analysis.
type Generator struct {
	config config.Config
	types  map[ast.Node]typesystem.Type
}

// New creates a generator using cfg for intrinsic names and the receiver name.
func New(cfg config.Config) *Generator {
	return &Generator{config: cfg}
}

// WithTypes hands over the analyzer's inferred types. They are used to
// resolve the owner of a method call statically; without them only
// declared types are consulted.
func (g *Generator) WithTypes(types map[ast.Node]typesystem.Type) *Generator {
	g.types = types
	return g
}

// Generate runs both lowering passes over program.
//
// The first pass remembers the signature of every top-level function and
// variable and of every erased class member, so the second can lower
// bodies in source order while referring to definitions that come later.
func (g *Generator) Generate(program *ast.Program) (*ir.Module, error) {
	module := ir.NewModule(program.File)

	for _, decl := range program.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			module.Remember(functionSignature(d))
		case *ast.VariableDeclaration:
			module.Remember(ir.Signature{Kind: ir.VariableSignature, Name: d.Name, Type: lowerType(d.Type)})
		case *ast.ClassDeclaration:
			if g.config.IsIntrinsicType(d.Name) {
				continue
			}
			for _, sig := range memberSignatures(g.erasedMembers(d)) {
				sig.Owner = d.Name
				module.Remember(sig)
			}
		case *ast.ImportDeclaration, *ast.TraitDeclaration:
		}
	}

	for _, decl := range program.Declarations {
		if err := g.lowerDeclaration(module, decl); err != nil {
			return nil, err
		}
	}
	return module, nil
}

func (g *Generator) lowerDeclaration(module *ir.Module, decl ast.Declaration) error {
	switch d := decl.(type) {
	case *ast.ImportDeclaration:
		return nil

	case *ast.FunctionDeclaration:
		if d.Tag.IsBuiltin() {
			return nil
		}
		fn, err := g.lowerFunction(module, d, "")
		if err != nil {
			return err
		}
		return pushed(d.Token, fn.DefinitionName(), module.PushFunction(fn))

	case *ast.VariableDeclaration:
		l := g.newLowering(module)
		init, err := l.lowerExpression(d.Value)
		if err != nil {
			return err
		}
		v := &ir.Variable{Name: d.Name, Type: lowerType(d.Type), Init: init}
		return pushed(d.Token, d.Name, module.PushVariable(v))

	case *ast.ClassDeclaration:
		return g.lowerClass(module, d)

	case *ast.TraitDeclaration:
		panic(fmt.Sprintf("unimplemented: lowering trait %s", d.Name))
	}
	return nil
}

// lowerClass erases a class into a flat type plus owned functions.
// Static methods keep their parameters; instance methods get the receiver
// prepended on a copy of the declaration.
func (g *Generator) lowerClass(module *ir.Module, cd *ast.ClassDeclaration) error {
	if g.config.IsIntrinsicType(cd.Name) {
		return nil
	}

	td := &ir.TypeDef{Name: cd.Name}
	for _, member := range cd.Members {
		if f, ok := member.(*ast.FieldMember); ok {
			td.Fields = append(td.Fields, ir.Field{Name: f.Name, Type: lowerType(f.Type)})
		}
	}
	erased := g.erasedMembers(cd)
	module.PushType(td, memberSignatures(erased))

	for _, decl := range erased {
		fn, err := g.lowerFunction(module, decl, cd.Name)
		if err != nil {
			return err
		}
		if err := pushed(decl.Token, fn.DefinitionName(), module.PushFunction(fn)); err != nil {
			return err
		}
	}
	return nil
}

// erasedMembers returns the class's methods as free functions in member
// order. Instance methods are copies with the receiver prepended.
func (g *Generator) erasedMembers(cd *ast.ClassDeclaration) []*ast.FunctionDeclaration {
	receiver := &ast.Parameter{
		Token: cd.Token,
		Name:  g.config.ReceiverName,
		Type:  &ast.NamedType{Token: cd.Token, Name: cd.Name},
	}

	var erased []*ast.FunctionDeclaration
	for _, member := range cd.Members {
		switch m := member.(type) {
		case *ast.StaticMethodMember:
			erased = append(erased, m.Function)
		case *ast.MethodMember:
			erased = append(erased, m.Function.WithReceiver(receiver))
		}
	}
	return erased
}

func memberSignatures(fns []*ast.FunctionDeclaration) []ir.Signature {
	sigs := make([]ir.Signature, len(fns))
	for i, fn := range fns {
		sigs[i] = functionSignature(fn)
	}
	return sigs
}

func (g *Generator) lowerFunction(module *ir.Module, decl *ast.FunctionDeclaration, owner string) (*ir.Function, error) {
	l := g.newLowering(module)
	fn := &ir.Function{
		Name:       decl.Name,
		Owner:      owner,
		Params:     make([]ir.Param, len(decl.Parameters)),
		ReturnType: lowerType(decl.ReturnType),
	}
	for i, p := range decl.Parameters {
		fn.Params[i] = ir.Param{Name: p.Name, Type: lowerType(p.Type)}
		l.locals[p.Name] = fn.Params[i].Type
	}

	switch body := decl.Body.(type) {
	case nil:
		fn.IsDeclaration = true
	case *ast.ExpressionBody:
		value, err := l.lowerExpression(body.Expression)
		if err != nil {
			return nil, err
		}
		fn.Body = &ir.Block{Statements: []ir.Stmt{&ir.Return{Value: value}}}
	case *ast.BlockStatement:
		block, err := l.lowerBlock(body)
		if err != nil {
			return nil, err
		}
		fn.Body = block
	}
	return fn, nil
}

func functionSignature(fn *ast.FunctionDeclaration) ir.Signature {
	params := make([]ir.Type, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = lowerType(p.Type)
	}
	return ir.Signature{Kind: ir.FunctionSignature, Name: fn.Name, Params: params, Type: lowerType(fn.ReturnType)}
}

// lowerType maps an annotation onto an IR type. A missing annotation is void.
func lowerType(t ast.Type) ir.Type {
	nt, ok := t.(*ast.NamedType)
	if !ok || nt == nil || nt.Name == config.VoidTypeName {
		return ir.Void{}
	}
	if nt.Name == config.ListTypeName && len(nt.Args) == 1 {
		return ir.List{Elem: lowerType(nt.Args[0])}
	}
	return ir.Named{Name: nt.Name}
}

// pushed turns a module push failure into a diagnostic at tok.
func pushed(tok token.Token, name string, err error) error {
	if errors.Is(err, ir.ErrNotRegistered) {
		return diagnostics.MissingSignature(tok, name)
	}
	return err
}
