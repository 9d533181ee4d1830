package treeio

import (
	"gopkg.in/yaml.v3"

	"github.com/funvibe/elz/internal/ast"
)

func (d *decoder) expression(node *yaml.Node) (ast.Expression, error) {
	kind, key, value, err := d.variant(node)
	if err != nil {
		return nil, err
	}
	tok := d.token(key, value.Value)

	switch kind {
	case "int":
		lit := &ast.IntegerLiteral{Token: tok}
		if err := value.Decode(&lit.Value); err != nil {
			return nil, d.errorf(value, "invalid integer %q", value.Value)
		}
		return lit, nil
	case "float":
		lit := &ast.FloatLiteral{Token: tok}
		if err := value.Decode(&lit.Value); err != nil {
			return nil, d.errorf(value, "invalid float %q", value.Value)
		}
		return lit, nil
	case "bool":
		lit := &ast.BooleanLiteral{Token: tok}
		if err := value.Decode(&lit.Value); err != nil {
			return nil, d.errorf(value, "invalid boolean %q", value.Value)
		}
		return lit, nil
	case "string":
		if value.Kind != yaml.ScalarNode {
			return nil, d.errorf(value, "expected a string")
		}
		return &ast.StringLiteral{Token: tok, Value: value.Value}, nil
	case "list":
		return d.list(key, value)
	case "ident":
		name, err := d.name(value)
		if err != nil {
			return nil, err
		}
		return &ast.Identifier{Token: d.token(key, name), Value: name}, nil
	case "call":
		return d.call(key, value)
	case "construct":
		return d.construction(key, value)
	case "member":
		return d.memberAccess(key, value)
	case "static":
		return d.staticAccess(key, value)
	case "binary":
		return d.binary(key, value)
	}
	return nil, d.errorf(key, "unknown expression %q", kind)
}

func (d *decoder) expressions(node *yaml.Node) ([]ast.Expression, error) {
	items, err := d.sequence(node)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Expression, 0, len(items))
	for _, item := range items {
		e, err := d.expression(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *decoder) list(key, node *yaml.Node) (*ast.ListLiteral, error) {
	if node.Kind != yaml.SequenceNode && !isNull(node) {
		return nil, d.errorf(node, "list elements must be a sequence")
	}
	elems, err := d.expressions(node)
	if err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Token: d.token(key, "["), Elements: elems}, nil
}

func (d *decoder) call(key, node *yaml.Node) (*ast.CallExpression, error) {
	f, err := d.fields(node, "callee", "args")
	if err != nil {
		return nil, err
	}
	calleeNode, err := d.requireField(node, f, "callee")
	if err != nil {
		return nil, err
	}
	callee, err := d.expression(calleeNode)
	if err != nil {
		return nil, err
	}
	args, err := d.expressions(f["args"])
	if err != nil {
		return nil, err
	}
	return &ast.CallExpression{Token: d.token(key, "("), Callee: callee, Arguments: args}, nil
}

// construction decodes `Name { field: value, ... }`. Initializers are a
// sequence so their order and any repetition survive decoding.
func (d *decoder) construction(key, node *yaml.Node) (*ast.ClassConstruction, error) {
	f, err := d.fields(node, "class", "fields")
	if err != nil {
		return nil, err
	}
	classNode, err := d.requireField(node, f, "class")
	if err != nil {
		return nil, err
	}
	class, err := d.name(classNode)
	if err != nil {
		return nil, err
	}
	cc := &ast.ClassConstruction{
		Token:     d.token(key, class),
		ClassName: &ast.Identifier{Token: d.token(classNode, class), Value: class},
	}

	inits, err := d.sequence(f["fields"])
	if err != nil {
		return nil, err
	}
	for _, item := range inits {
		fi, err := d.fields(item, "name", "value")
		if err != nil {
			return nil, err
		}
		nameNode, err := d.requireField(item, fi, "name")
		if err != nil {
			return nil, err
		}
		name, err := d.name(nameNode)
		if err != nil {
			return nil, err
		}
		valueNode, err := d.requireField(item, fi, "value")
		if err != nil {
			return nil, err
		}
		value, err := d.expression(valueNode)
		if err != nil {
			return nil, err
		}
		cc.Fields = append(cc.Fields, &ast.FieldInit{Token: d.token(nameNode, name), Name: name, Value: value})
	}
	return cc, nil
}

func (d *decoder) memberAccess(key, node *yaml.Node) (*ast.MemberExpression, error) {
	f, err := d.fields(node, "of", "name")
	if err != nil {
		return nil, err
	}
	ofNode, err := d.requireField(node, f, "of")
	if err != nil {
		return nil, err
	}
	left, err := d.expression(ofNode)
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
	return &ast.MemberExpression{
		Token:  d.token(key, "."),
		Left:   left,
		Member: &ast.Identifier{Token: d.token(nameNode, name), Value: name},
	}, nil
}

func (d *decoder) staticAccess(key, node *yaml.Node) (*ast.StaticAccessExpression, error) {
	f, err := d.fields(node, "class", "name")
	if err != nil {
		return nil, err
	}
	classNode, err := d.requireField(node, f, "class")
	if err != nil {
		return nil, err
	}
	class, err := d.name(classNode)
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
	return &ast.StaticAccessExpression{
		Token:     d.token(key, "::"),
		ClassName: &ast.Identifier{Token: d.token(classNode, class), Value: class},
		Member:    &ast.Identifier{Token: d.token(nameNode, name), Value: name},
	}, nil
}

func (d *decoder) binary(key, node *yaml.Node) (*ast.InfixExpression, error) {
	f, err := d.fields(node, "op", "left", "right")
	if err != nil {
		return nil, err
	}
	opNode, err := d.requireField(node, f, "op")
	if err != nil {
		return nil, err
	}
	leftNode, err := d.requireField(node, f, "left")
	if err != nil {
		return nil, err
	}
	left, err := d.expression(leftNode)
	if err != nil {
		return nil, err
	}
	rightNode, err := d.requireField(node, f, "right")
	if err != nil {
		return nil, err
	}
	right, err := d.expression(rightNode)
	if err != nil {
		return nil, err
	}
	return &ast.InfixExpression{Token: d.token(opNode, opNode.Value), Left: left, Operator: opNode.Value, Right: right}, nil
}
