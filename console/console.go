/*
Package console prints binary search trees to terminals.

Trees are printed sideways: the root at the left margin, larger values above
smaller ones, and every level of depth indented by one step. Levels of depth
are distinguished by color, if the output is a color-capable terminal.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Config configures the output of a Printer.
type Config struct {
	Indent    int            // indentation per level of depth, in en
	LineWidth int            // labels are truncated at this position, 0 means unlimited
	Context   *uax11.Context // context for display width of labels, nil means Latin
}

// Printer outputs trees to a writer.
type Printer struct {
	config *Config
	colors []*color.Color
}

// NewPrinter creates a printer. If config is nil, a heuristic creates a config
// from the current terminal's properties. If colors is nil, a default palette
// is used. Colors cycle with depth.
//
func NewPrinter(config *Config, colors []*color.Color) *Printer {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.Indent <= 0 {
		config.Indent = 4
	}
	if len(colors) == 0 {
		colors = makeDefaultPalette()
	}
	grapheme.SetupGraphemeClasses()
	return &Printer{config: config, colors: colors}
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgBlue),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
	}
}

// Print outputs tree to w. An empty tree prints as "empty".
func Print[T constraints.Ordered](p *Printer, tree *bintree.Tree[T], w io.Writer) error {
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "empty\n")
		return err
	}
	for v, depth := range tree.DepthFirstReverse() {
		indent := depth * p.config.Indent
		label := p.fit(fmt.Sprint(v), indent)
		c := p.colors[depth%len(p.colors)]
		io.WriteString(w, strings.Repeat(" ", indent))
		if _, err := c.Fprint(w, label); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// fit truncates label so that it does not extend beyond the configured line
// width when printed at position indent. Truncated labels end in '…'.
func (p *Printer) fit(label string, indent int) string {
	if p.config.LineWidth <= 0 {
		return label
	}
	avail := p.config.LineWidth - indent
	if Width(label, p.config.Context) <= avail {
		return label
	}
	if avail <= 1 {
		return "…"
	}
	var sb strings.Builder
	w := 0
	for _, r := range label {
		rw := Width(string(r), p.config.Context)
		if w+rw > avail-1 {
			break
		}
		sb.WriteRune(r)
		w += rw
	}
	sb.WriteRune('…')
	return sb.String()
}

// Width returns the display width of s in en, i.e. fixed width positions.
func Width(s string, context *uax11.Context) int {
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printer Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched off
// for non-terminal output.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: 4}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w < 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	} else {
		color.NoColor = true
	}
	T().P("print", "console").Infof("setting line width to %d en", config.LineWidth)
	return config
}
