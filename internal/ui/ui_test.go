package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "#####..... 1/2", ProgressBar(1, 2, 10))
	assert.Equal(t, "..... 0/0", ProgressBar(0, 0, 3), "width is clamped and zero total is safe")
	assert.Equal(t, "########## 3/3", ProgressBar(3, 3, 10))
}

func TestPanelContainsLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"first", "second line"})

	out := buf.String()
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second line")
	assert.True(t, strings.HasPrefix(out, "+"), "mono theme uses ASCII borders")
}

func TestOKAndFail(t *testing.T) {
	var buf bytes.Buffer
	OK(&buf, "wrote qa-summary.md")
	Fail(&buf, "boom")

	assert.Contains(t, buf.String(), "wrote qa-summary.md")
	assert.Contains(t, buf.String(), "boom")
}

func TestSetThemeUnknownFallsBack(t *testing.T) {
	SetTheme("does-not-exist")
	assert.Equal(t, "█", Current().BarFull)
}

func keepColorProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestSetColorForcing(t *testing.T) {
	keepColorProfile(t)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	SetColorForcing(true, false)
	assert.Equal(t, termenv.ANSI256, lipgloss.ColorProfile())
	assert.Contains(t, style.Render("x"), "\x1b[")

	SetColorForcing(true, true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile(), "disable wins over force")
	assert.Equal(t, "x", style.Render("x"))
}

func TestSetColorForcingNoop(t *testing.T) {
	keepColorProfile(t)
	lipgloss.SetColorProfile(termenv.TrueColor)

	SetColorForcing(false, false)
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are not terminals")
}
