package analyzer

import (
	"fmt"

	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/symbols"
	"github.com/funvibe/elz/internal/typesystem"
)

// Analyzer performs semantic analysis on a program tree.
//
// Checking runs two passes that share one root scope: AnalyzeNaming
// registers every top-level signature, AnalyzeBodies checks initializers
// and bodies against them. The first error ends the analysis.
type Analyzer struct {
	symbolTable *symbols.SymbolTable
	inferCtx    *InferenceContext
	TypeMap     map[ast.Node]typesystem.Type // Inferred types of expressions
}

// New creates a new Analyzer over a root symbol table.
func New(symbolTable *symbols.SymbolTable) *Analyzer {
	return &Analyzer{
		symbolTable: symbolTable,
		inferCtx:    NewInferenceContext(),
		TypeMap:     make(map[ast.Node]typesystem.Type),
	}
}

// SymbolTable returns the root scope.
func (a *Analyzer) SymbolTable() *symbols.SymbolTable {
	return a.symbolTable
}

// Analyze runs both passes over program.
func (a *Analyzer) Analyze(program *ast.Program) error {
	if err := a.AnalyzeNaming(program); err != nil {
		return err
	}
	return a.AnalyzeBodies(program)
}

// AnalyzeNaming runs the naming pass: variables, functions and classes are
// registered in source order under one namespace.
func (a *Analyzer) AnalyzeNaming(program *ast.Program) error {
	for _, decl := range program.Declarations {
		if err := a.registerDeclaration(decl); err != nil {
			return err
		}
	}
	return nil
}

// AnalyzeBodies runs the body pass. AnalyzeNaming must have run first.
func (a *Analyzer) AnalyzeBodies(program *ast.Program) error {
	for _, decl := range program.Declarations {
		if err := a.checkDeclaration(decl); err != nil {
			return err
		}
	}
	a.resolveTypeMap()
	return nil
}

// resolveTypeMap applies the final substitution so recorded types no longer
// mention variables that were resolved later in the pass.
func (a *Analyzer) resolveTypeMap() {
	for node, t := range a.TypeMap {
		a.TypeMap[node] = a.inferCtx.Resolve(t)
	}
}

// unimplemented aborts the whole compilation. It is reserved for constructs
// the toolchain does not support at all, never for checking errors.
func unimplemented(what string) {
	panic(fmt.Sprintf("unimplemented: %s", what))
}
