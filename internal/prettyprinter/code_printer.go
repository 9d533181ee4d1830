package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/elz/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"!=": 3,
	"<":  4,
	">":  4,
	"<=": 4,
	">=": 4,
	"+":  7,
	"-":  7,
	"*":  8,
	"/":  8,
	"%":  8,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

// CodePrinter renders a program tree back as elz source. It is used to
// show what a decoded tree document contains.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders program and returns the source text.
func Print(program *ast.Program) string {
	p := NewCodePrinter()
	p.PrintProgram(program)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
}

// PrintProgram prints the declarations separated by blank lines.
func (p *CodePrinter) PrintProgram(n *ast.Program) {
	for i, decl := range n.Declarations {
		if i > 0 {
			p.writeln()
		}
		p.printDeclaration(decl)
	}
}

func (p *CodePrinter) printDeclaration(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.ImportDeclaration:
		p.write("import " + d.Path + ";\n")
	case *ast.FunctionDeclaration:
		p.printFunction(d, "")
	case *ast.VariableDeclaration:
		p.printVariable(d)
	case *ast.ClassDeclaration:
		p.printClass(d)
	case *ast.TraitDeclaration:
		p.write("trait " + d.Name + " {}\n")
	}
}

// printFunction prints a function; prefix is "::" for static methods.
func (p *CodePrinter) printFunction(fn *ast.FunctionDeclaration, prefix string) {
	if fn.Tag.IsBuiltin() {
		p.writeIndent()
		p.write("@" + fn.Tag.String() + "\n")
	}
	p.writeIndent()
	p.write(prefix + fn.Name + "(")
	for i, param := range fn.Parameters {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Name + ": " + typeString(param.Type))
	}
	p.write("): " + typeString(fn.ReturnType))

	switch body := fn.Body.(type) {
	case nil:
		p.write(";\n")
	case *ast.ExpressionBody:
		p.write(" = ")
		p.printExpr(body.Expression, 0, false)
		p.write(";\n")
	case *ast.BlockStatement:
		if len(body.Statements) == 0 {
			p.write(" {}\n")
			return
		}
		p.write(" {\n")
		p.indent++
		for _, stmt := range body.Statements {
			p.printStatement(stmt)
		}
		p.indent--
		p.writeIndent()
		p.write("}\n")
	}
}

func (p *CodePrinter) printVariable(v *ast.VariableDeclaration) {
	p.writeIndent()
	p.write(v.Name + ": " + typeString(v.Type) + " = ")
	p.printExpr(v.Value, 0, false)
	p.write(";\n")
}

func (p *CodePrinter) printClass(cd *ast.ClassDeclaration) {
	if len(cd.Members) == 0 {
		p.write("class " + cd.Name + " {}\n")
		return
	}
	p.write("class " + cd.Name + " {\n")
	p.indent++
	for _, member := range cd.Members {
		switch m := member.(type) {
		case *ast.FieldMember:
			p.writeIndent()
			p.write(m.Name + ": " + typeString(m.Type) + ";\n")
		case *ast.StaticMethodMember:
			p.printFunction(m.Function, "::")
		case *ast.MethodMember:
			p.printFunction(m.Function, "")
		}
	}
	p.indent--
	p.write("}\n")
}

func (p *CodePrinter) printStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ReturnStatement:
		p.writeIndent()
		if s.Value == nil {
			p.write("return;\n")
			return
		}
		p.write("return ")
		p.printExpr(s.Value, 0, false)
		p.write(";\n")
	case *ast.VariableDeclaration:
		p.printVariable(s)
	case *ast.CallStatement:
		p.writeIndent()
		p.printExpr(s.Call, 0, false)
		p.write(";\n")
	}
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	switch e := expr.(type) {
	case *ast.InfixExpression:
		prec := getPrecedence(e.Operator)
		// All operators are left-associative
		needParens := prec < parentPrec || (prec == parentPrec && isRight)
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		p.write(" " + e.Operator + " ")
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.IntegerLiteral:
		p.write(strconv.FormatInt(e.Value, 10))
	case *ast.FloatLiteral:
		s := strconv.FormatFloat(e.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		p.write(s)
	case *ast.BooleanLiteral:
		p.write(strconv.FormatBool(e.Value))
	case *ast.StringLiteral:
		p.write(strconv.Quote(e.Value))
	case *ast.ListLiteral:
		p.write("[")
		p.printExprList(e.Elements)
		p.write("]")
	case *ast.Identifier:
		p.write(e.Value)
	case *ast.CallExpression:
		p.printExpr(e.Callee, 11, false)
		p.write("(")
		p.printExprList(e.Arguments)
		p.write(")")
	case *ast.MemberExpression:
		p.printExpr(e.Left, 11, false)
		p.write("." + e.Member.Value)
	case *ast.StaticAccessExpression:
		p.write(e.ClassName.Value + "::" + e.Member.Value)
	case *ast.ClassConstruction:
		if len(e.Fields) == 0 {
			p.write(e.ClassName.Value + " {}")
			return
		}
		p.write(e.ClassName.Value + " { ")
		for i, fi := range e.Fields {
			if i > 0 {
				p.write(", ")
			}
			p.write(fi.Name + ": ")
			p.printExpr(fi.Value, 0, false)
		}
		p.write(" }")
	default:
		p.write("<???>")
	}
}

func (p *CodePrinter) printExprList(exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e, 0, false)
	}
}

func typeString(t ast.Type) string {
	if t == nil {
		return "void"
	}
	return t.String()
}
