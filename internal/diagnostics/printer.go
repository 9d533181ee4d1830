package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31;1m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
)

// Printer writes diagnostics for humans, coloured when the output is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a printer for w. mode is "auto", "always" or "never";
// auto colours only terminals and honours NO_COLOR.
func NewPrinter(w io.Writer, mode string) *Printer {
	return &Printer{w: w, color: shouldColor(w, mode)}
}

func shouldColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + colorReset
}

// Print writes err. Diagnostics get the `file:line:col: error[E001]` layout,
// anything else is printed as a plain error line.
func (p *Printer) Print(err error) {
	var de *DiagnosticError
	if !errors.As(err, &de) {
		fmt.Fprintf(p.w, "%s %s\n", p.paint(colorRed, "error:"), err)
		return
	}

	pos := fmt.Sprintf("%d:%d", de.Token.Line, de.Token.Column)
	if de.File != "" {
		pos = de.File + ":" + pos
	}
	fmt.Fprintf(p.w, "%s %s %s\n",
		p.paint(colorBold, pos+":"),
		p.paint(colorRed, fmt.Sprintf("error[%s]:", de.Code)),
		de.Message,
	)
	fmt.Fprintf(p.w, "  %s %s\n", p.paint(colorCyan, "= kind:"), de.Kind())
}
