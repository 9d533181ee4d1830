package treeio

import (
	"gopkg.in/yaml.v3"

	"github.com/funvibe/elz/internal/ast"
)

func (d *decoder) block(node *yaml.Node) (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: d.token(node, "{"), Statements: []ast.Statement{}}
	for _, item := range node.Content {
		stmt, err := d.statement(item)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func (d *decoder) statement(node *yaml.Node) (ast.Statement, error) {
	kind, key, value, err := d.variant(node)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "return":
		ret := &ast.ReturnStatement{Token: d.token(key, kind)}
		if !isNull(value) {
			if ret.Value, err = d.expression(value); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case "let":
		return d.variable(value)
	case "call":
		call, err := d.call(key, value)
		if err != nil {
			return nil, err
		}
		return &ast.CallStatement{Token: call.Token, Call: call}, nil
	}
	return nil, d.errorf(key, "unknown statement %q", kind)
}
