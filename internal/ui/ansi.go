package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render(symCheck+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render(symCross+" "+msg))
}
