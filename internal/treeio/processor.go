package treeio

import (
	"github.com/funvibe/elz/internal/pipeline"
)

// LoaderProcessor decodes the program tree into ctx.AstRoot. It reads
// ctx.FilePath unless the context already carries Source.
type LoaderProcessor struct{}

func (lp *LoaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot != nil {
		return ctx
	}

	var err error
	if ctx.Source != nil {
		ctx.AstRoot, err = Decode(ctx.Source, ctx.FilePath)
	} else {
		ctx.AstRoot, err = Load(ctx.FilePath)
	}
	if err != nil {
		ctx.AstRoot = nil
		ctx.Errors = append(ctx.Errors, err)
	}
	return ctx
}
