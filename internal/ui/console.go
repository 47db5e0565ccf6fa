package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when output carries ANSI colour.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Console writes prompts, status lines and tables for the shell.
// Fail lines go to the error writer, everything else to out.
type Console struct {
	out, err io.Writer
	r        *lipgloss.Renderer
	plain    bool

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
}

func NewConsole(out, errOut io.Writer, mode ColorMode) *Console {
	r := lipgloss.NewRenderer(out)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		out:          out,
		err:          errOut,
		r:            r,
		plain:        mode == ColorNever,
		successStyle: r.NewStyle().Foreground(lipgloss.Color("42")),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		mutedStyle:   r.NewStyle().Faint(true),
	}
}

func (c *Console) render(st lipgloss.Style, s string) string {
	if c.plain {
		return s
	}
	return st.Render(s)
}

// Say prints a plain line, used for prompts.
func (c *Console) Say(msg string) { fmt.Fprintln(c.out, msg) }

// Note prints a de-emphasised informational line.
func (c *Console) Note(msg string) { fmt.Fprintln(c.out, c.render(c.mutedStyle, msg)) }

func (c *Console) OK(msg string) { fmt.Fprintln(c.out, c.render(c.successStyle, "✔ "+msg)) }

func (c *Console) Fail(msg string) { fmt.Fprintln(c.err, c.render(c.errorStyle, "✖ "+msg)) }
