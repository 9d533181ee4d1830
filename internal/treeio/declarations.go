package treeio

import (
	"gopkg.in/yaml.v3"

	"github.com/funvibe/elz/internal/ast"
)

func (d *decoder) declaration(node *yaml.Node) (ast.Declaration, error) {
	kind, key, value, err := d.variant(node)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "import":
		path, err := d.name(value)
		if err != nil {
			return nil, err
		}
		return &ast.ImportDeclaration{Token: d.token(key, kind), Path: path}, nil
	case "function":
		return d.function(key, value)
	case "variable":
		return d.variable(value)
	case "class":
		return d.class(value)
	case "trait":
		name, err := d.name(value)
		if err != nil {
			return nil, err
		}
		return &ast.TraitDeclaration{Token: d.token(key, name), Name: name}, nil
	}
	return nil, d.errorf(key, "unknown declaration %q", kind)
}

// function decodes a function, method or static method. A missing body
// makes a forward declaration, a sequence a block and anything else an
// expression body.
func (d *decoder) function(key, node *yaml.Node) (*ast.FunctionDeclaration, error) {
	f, err := d.fields(node, "name", "tag", "params", "returns", "body")
	if err != nil {
		return nil, err
	}
	nameNode, err := d.requireField(node, f, "name")
	if err != nil {
		return nil, err
	}
	name, err := d.name(nameNode)
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionDeclaration{Token: d.token(nameNode, name), Name: name}

	if tag, ok := f["tag"]; ok {
		switch tag.Value {
		case "builtin":
			fn.Tag = ast.TagBuiltin
		case "", "none":
		default:
			return nil, d.errorf(tag, "unknown function tag %q", tag.Value)
		}
	}

	params, err := d.sequence(f["params"])
	if err != nil {
		return nil, err
	}
	for _, p := range params {
		param, err := d.parameter(p)
		if err != nil {
			return nil, err
		}
		fn.Parameters = append(fn.Parameters, param)
	}

	fn.ReturnType, err = d.optionalType(f["returns"], key)
	if err != nil {
		return nil, err
	}

	body, ok := f["body"]
	switch {
	case !ok || isNull(body):
	case body.Kind == yaml.SequenceNode:
		block, err := d.block(body)
		if err != nil {
			return nil, err
		}
		fn.Body = block
	default:
		expr, err := d.expression(body)
		if err != nil {
			return nil, err
		}
		fn.Body = &ast.ExpressionBody{Expression: expr}
	}
	return fn, nil
}

func (d *decoder) parameter(node *yaml.Node) (*ast.Parameter, error) {
	f, err := d.fields(node, "name", "type")
	if err != nil {
		return nil, err
	}
	nameNode, err := d.requireField(node, f, "name")
	if err != nil {
		return nil, err
	}
	name, err := d.name(nameNode)
	if err != nil {
		return nil, err
	}
	typeNode, err := d.requireField(node, f, "type")
	if err != nil {
		return nil, err
	}
	typ, err := d.typeAnnotation(typeNode)
	if err != nil {
		return nil, err
	}
	return &ast.Parameter{Token: d.token(nameNode, name), Name: name, Type: typ}, nil
}

// variable decodes `name: Type = value`, at top level or as a statement.
func (d *decoder) variable(node *yaml.Node) (*ast.VariableDeclaration, error) {
	f, err := d.fields(node, "name", "type", "value")
	if err != nil {
		return nil, err
	}
	nameNode, err := d.requireField(node, f, "name")
	if err != nil {
		return nil, err
	}
	name, err := d.name(nameNode)
	if err != nil {
		return nil, err
	}
	typeNode, err := d.requireField(node, f, "type")
	if err != nil {
		return nil, err
	}
	typ, err := d.typeAnnotation(typeNode)
	if err != nil {
		return nil, err
	}
	valueNode, err := d.requireField(node, f, "value")
	if err != nil {
		return nil, err
	}
	value, err := d.expression(valueNode)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Token: d.token(nameNode, name), Name: name, Type: typ, Value: value}, nil
}

func (d *decoder) class(node *yaml.Node) (*ast.ClassDeclaration, error) {
	f, err := d.fields(node, "name", "members")
	if err != nil {
		return nil, err
	}
	nameNode, err := d.requireField(node, f, "name")
	if err != nil {
		return nil, err
	}
	name, err := d.name(nameNode)
	if err != nil {
		return nil, err
	}
	cd := &ast.ClassDeclaration{Token: d.token(nameNode, name), Name: name}

	members, err := d.sequence(f["members"])
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		member, err := d.member(m)
		if err != nil {
			return nil, err
		}
		cd.Members = append(cd.Members, member)
	}
	return cd, nil
}

func (d *decoder) member(node *yaml.Node) (ast.ClassMember, error) {
	kind, key, value, err := d.variant(node)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "field":
		param, err := d.parameter(value)
		if err != nil {
			return nil, err
		}
		return &ast.FieldMember{Token: param.Token, Name: param.Name, Type: param.Type}, nil
	case "method":
		fn, err := d.function(key, value)
		if err != nil {
			return nil, err
		}
		return &ast.MethodMember{Function: fn}, nil
	case "static":
		fn, err := d.function(key, value)
		if err != nil {
			return nil, err
		}
		return &ast.StaticMethodMember{Function: fn}, nil
	}
	return nil, d.errorf(key, "unknown class member %q", kind)
}
