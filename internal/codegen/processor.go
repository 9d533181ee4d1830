package codegen

import (
	"github.com/funvibe/elz/internal/pipeline"
)

// CodeGeneratorProcessor lowers the checked tree into ctx.Module.
type CodeGeneratorProcessor struct{}

func (cgp *CodeGeneratorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	module, err := New(ctx.Config).WithTypes(ctx.TypeMap).Generate(ctx.AstRoot)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Module = module
	return ctx
}
