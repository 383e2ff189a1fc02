package toast

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ResolveColors reports whether colored output should be used. NO_COLOR and a
// dumb terminal turn colors off unless forced.
func ResolveColors(disabled bool) bool {
	if disabled {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

type Printer struct {
	out       io.Writer
	useColors bool
}

func NewPrinter(out io.Writer, useColors bool) *Printer {
	if out == nil {
		out = os.Stderr
	}
	return &Printer{out: out, useColors: useColors}
}

var (
	symbols = map[Kind]string{Success: "✓", Error: "✗", Warning: "⚠", Info: "ℹ"}
	labels  = map[Kind]string{Success: "[OK]", Error: "[ERROR]", Warning: "[WARN]", Info: "[INFO]"}
	colors  = map[Kind]color.Attribute{Success: color.FgGreen, Error: color.FgRed, Warning: color.FgYellow, Info: color.FgCyan}
)

func (p *Printer) Print(t Toast) {
	if !p.useColors {
		fmt.Fprintf(p.out, "%s %s\n", labels[t.Kind], t.Message)
		return
	}

	c := color.New(colors[t.Kind])
	c.EnableColor()
	c.Fprintf(p.out, "%s %s\n", symbols[t.Kind], t.Message)
}
