// Package treeio reads the program tree handed over by the parser.
//
// The tree is a YAML document. Every declaration, statement and
// expression is a mapping with a single key naming its kind:
//
//	declarations:
//	  - variable: {name: x, type: "List[int]", value: {list: [{int: 1}]}}
//	  - function:
//	      name: main
//	      returns: void
//	      body:
//	        - call: {callee: {ident: puts}, args: [{string: hi}]}
//
// Source positions are those of the YAML nodes themselves.
package treeio

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/token"
)

// Error is a malformed-document error at a position in the file.
type Error struct {
	File   string
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
}

// Load reads and decodes the document at path.
func Load(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data, path)
}

// Decode decodes a program tree document. file names the document in
// positions and error messages.
func Decode(data []byte, file string) (*ast.Program, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	d := &decoder{file: file}
	return d.program(&root)
}

type decoder struct {
	file string
}

func (d *decoder) errorf(node *yaml.Node, format string, args ...interface{}) error {
	return &Error{File: d.file, Line: node.Line, Column: node.Column, Msg: fmt.Sprintf(format, args...)}
}

func (d *decoder) token(node *yaml.Node, lexeme string) token.Token {
	return token.Token{Lexeme: lexeme, File: d.file, Line: node.Line, Column: node.Column}
}

func (d *decoder) program(root *yaml.Node) (*ast.Program, error) {
	program := &ast.Program{File: d.file}
	if root.Kind == 0 {
		return program, nil
	}
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	fields, err := d.fields(doc, "declarations")
	if err != nil {
		return nil, err
	}
	decls, ok := fields["declarations"]
	if !ok || isNull(decls) {
		return program, nil
	}
	if decls.Kind != yaml.SequenceNode {
		return nil, d.errorf(decls, "declarations must be a sequence")
	}
	for _, item := range decls.Content {
		decl, err := d.declaration(item)
		if err != nil {
			return nil, err
		}
		program.Declarations = append(program.Declarations, decl)
	}
	return program, nil
}

// variant splits a single-key mapping into its key and value.
func (d *decoder) variant(node *yaml.Node) (string, *yaml.Node, *yaml.Node, error) {
	if node.Kind == yaml.AliasNode {
		return d.variant(node.Alias)
	}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return "", nil, nil, d.errorf(node, "expected a mapping with a single key")
	}
	return node.Content[0].Value, node.Content[0], node.Content[1], nil
}

// fields reads a mapping, rejecting keys outside allowed and repeated keys.
func (d *decoder) fields(node *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if node.Kind == yaml.AliasNode {
		return d.fields(node.Alias, allowed...)
	}
	if node.Kind != yaml.MappingNode {
		return nil, d.errorf(node, "expected a mapping")
	}
	out := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !contains(allowed, key.Value) {
			return nil, d.errorf(key, "unknown key %q (want one of %s)", key.Value, strings.Join(allowed, ", "))
		}
		if _, dup := out[key.Value]; dup {
			return nil, d.errorf(key, "duplicate key %q", key.Value)
		}
		out[key.Value] = node.Content[i+1]
	}
	return out, nil
}

func (d *decoder) requireField(parent *yaml.Node, fields map[string]*yaml.Node, name string) (*yaml.Node, error) {
	node, ok := fields[name]
	if !ok || isNull(node) {
		return nil, d.errorf(parent, "missing %q", name)
	}
	return node, nil
}

func (d *decoder) name(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || isNull(node) {
		return "", d.errorf(node, "expected a name")
	}
	name := strings.TrimSpace(node.Value)
	if name == "" {
		return "", d.errorf(node, "empty name")
	}
	return name, nil
}

func (d *decoder) sequence(node *yaml.Node) ([]*yaml.Node, error) {
	if node == nil || isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, d.errorf(node, "expected a sequence")
	}
	return node.Content, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
