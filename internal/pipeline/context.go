package pipeline

import (
	"github.com/funvibe/elz/internal/ast"
	"github.com/funvibe/elz/internal/config"
	"github.com/funvibe/elz/internal/ir"
	"github.com/funvibe/elz/internal/symbols"
	"github.com/funvibe/elz/internal/typesystem"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the state of one compilation unit between stages.
type PipelineContext struct {
	FilePath    string
	Source      []byte // Raw program-tree document, when loaded from disk
	Config      config.Config
	AstRoot     *ast.Program
	SymbolTable *symbols.SymbolTable
	TypeMap     map[ast.Node]typesystem.Type
	Module      *ir.Module
	Errors      []error
}

// NewPipelineContext creates a context for the document at filePath.
func NewPipelineContext(filePath string, cfg config.Config) *PipelineContext {
	return &PipelineContext{
		FilePath: filePath,
		Config:   cfg,
	}
}

// NewProgramContext creates a context for an already built tree.
func NewProgramContext(program *ast.Program, cfg config.Config) *PipelineContext {
	return &PipelineContext{
		FilePath: program.File,
		Config:   cfg,
		AstRoot:  program,
	}
}

// Failed reports whether any stage recorded an error.
func (c *PipelineContext) Failed() bool {
	return len(c.Errors) > 0
}

// Err returns the first recorded error, or nil.
func (c *PipelineContext) Err() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors[0]
}
