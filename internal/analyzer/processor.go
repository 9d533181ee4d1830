package analyzer

import (
	"github.com/funvibe/elz/internal/pipeline"
	"github.com/funvibe/elz/internal/symbols"
)

// SemanticAnalyzerProcessor checks the program tree held by the context.
type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	if ctx.SymbolTable == nil {
		ctx.SymbolTable = symbols.NewSymbolTable()
	}

	analyzer := New(ctx.SymbolTable)
	err := analyzer.Analyze(ctx.AstRoot)

	ctx.TypeMap = analyzer.TypeMap // Export inferred types to context
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
