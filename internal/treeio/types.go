package treeio

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/config"
)

// optionalType decodes an annotation that defaults to void.
func (d *decoder) optionalType(node, at *yaml.Node) (ast.Type, error) {
	if node == nil || isNull(node) {
		return &ast.NamedType{Token: d.token(at, config.VoidTypeName), Name: config.VoidTypeName}, nil
	}
	return d.typeAnnotation(node)
}

// typeAnnotation parses a written type such as `int` or `List[List[f64]]`.
func (d *decoder) typeAnnotation(node *yaml.Node) (ast.Type, error) {
	if node.Kind != yaml.ScalarNode || isNull(node) {
		return nil, d.errorf(node, "expected a type")
	}
	p := &typeParser{src: strings.TrimSpace(node.Value)}
	t := p.parse(d, node)
	if p.err != "" || p.pos != len(p.src) {
		msg := p.err
		if msg == "" {
			msg = "unexpected " + p.src[p.pos:]
		}
		return nil, d.errorf(node, "invalid type %q: %s", node.Value, msg)
	}
	return t, nil
}

type typeParser struct {
	src string
	pos int
	err string
}

func (p *typeParser) parse(d *decoder, node *yaml.Node) *ast.NamedType {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		p.err = "expected a type name"
		return nil
	}
	name := p.src[start:p.pos]
	t := &ast.NamedType{Token: d.token(node, name), Name: name}

	p.skipSpaces()
	if p.pos >= len(p.src) || p.src[p.pos] != '[' {
		return t
	}
	p.pos++
	for {
		arg := p.parse(d, node)
		if p.err != "" {
			return nil
		}
		t.Args = append(t.Args, arg)
		p.skipSpaces()
		if p.pos >= len(p.src) {
			p.err = "missing ]"
			return nil
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return t
		default:
			p.err = "unexpected " + string(p.src[p.pos])
			return nil
		}
	}
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func isNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
