package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/funvibe/elz/internal/analyzer"
	"github.com/funvibe/elz/internal/codegen"
	"github.com/funvibe/elz/internal/config"
	"github.com/funvibe/elz/internal/diagnostics"
	"github.com/funvibe/elz/internal/ir"
	"github.com/funvibe/elz/internal/pipeline"
	"github.com/funvibe/elz/internal/prettyprinter"
	"github.com/funvibe/elz/internal/treeio"
)

const usage = `Usage: elzc <command> <tree.elz.yaml> [-config elz.yaml] [-v]

Commands:
  check    load and type-check the program tree
  build    check, then lower to IR and list the definitions
  print    print the program tree as elz source
  help     show this message
`

func main() {
	// Unsupported constructs such as traits abort with a panic.
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(2)
		}
	}()

	// ELZ_TEST_MODE=1 keeps messages stable across runs (fresh type
	// variables print as t?).
	if os.Getenv("ELZ_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Progress goes to stderr, results to stdout

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	command    string
	file       string
	configPath string
	verbose    bool
}

func parseArgs(args []string) (options, error) {
	var opts options
	var positional []string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-config", "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a file", arg)
			}
			i++
			opts.configPath = args[i]
		case "-v", "--verbose":
			opts.verbose = true
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) == 0 {
		return opts, fmt.Errorf("missing command")
	}
	opts.command = positional[0]
	if opts.command == "help" || opts.command == "-help" || opts.command == "--help" {
		opts.command = "help"
		return opts, nil
	}
	if len(positional) != 2 {
		return opts, fmt.Errorf("%s expects exactly one program tree", opts.command)
	}
	opts.file = positional[1]
	return opts, nil
}

// loadConfig reads the explicit config file, or elz.yaml next to the
// program tree when present.
func loadConfig(opts options) (config.Config, error) {
	if opts.configPath != "" {
		return config.LoadConfig(opts.configPath)
	}
	candidate := filepath.Join(filepath.Dir(opts.file), config.ProjectFileName)
	if _, err := os.Stat(candidate); err == nil {
		return config.LoadConfig(candidate)
	}
	return config.Default(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "elzc: %v\n\n%s", err, usage)
		return 2
	}
	if opts.command == "help" {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "elzc: %v\n", err)
		return 2
	}
	printer := diagnostics.NewPrinter(stderr, string(cfg.Color))

	stages := []pipeline.Processor{&treeio.LoaderProcessor{}}
	switch opts.command {
	case "print":
	case "check":
		stages = append(stages, &analyzer.SemanticAnalyzerProcessor{})
	case "build":
		stages = append(stages, &analyzer.SemanticAnalyzerProcessor{}, &codegen.CodeGeneratorProcessor{})
	default:
		fmt.Fprintf(stderr, "elzc: unknown command %q\n\n%s", opts.command, usage)
		return 2
	}

	if opts.verbose {
		log.Printf("elzc: %s %s", opts.command, opts.file)
	}
	ctx := pipeline.New(stages...).Run(pipeline.NewPipelineContext(opts.file, cfg))
	if ctx.Failed() {
		printer.Print(ctx.Err())
		return 1
	}

	switch {
	case opts.command == "print":
		fmt.Fprint(stdout, prettyprinter.Print(ctx.AstRoot))
	case opts.command == "build":
		printModule(stdout, ctx.Module)
	case opts.verbose:
		log.Printf("elzc: %s: ok (%d declarations)", opts.file, len(ctx.AstRoot.Declarations))
	}
	return 0
}

// printModule lists the lowered definitions, one per line.
func printModule(w io.Writer, module *ir.Module) {
	fmt.Fprintf(w, "module %s (%s)\n", module.Name, module.ID)
	for _, def := range module.Definitions() {
		switch d := def.(type) {
		case *ir.TypeDef:
			fmt.Fprintf(w, "  type %s (%d fields)\n", d.Name, len(d.Fields))
		case *ir.Function:
			kind := "func"
			if d.IsDeclaration {
				kind = "declare"
			}
			fmt.Fprintf(w, "  %s %s\n", kind, d.Signature())
		case *ir.Variable:
			fmt.Fprintf(w, "  var %s: %s\n", d.Name, d.Type)
		}
	}
}
