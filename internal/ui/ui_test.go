package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelPadsToWidestVisibleLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"To Buy", "\033[1m 1. Milk →\033[0m", "ab"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "+------------+", lines[0])
	assert.Equal(t, "| To Buy     |", lines[1])
	assert.Equal(t, "| ab         |", lines[3])
	assert.Equal(t, lines[0], lines[4])
}

func TestMonoDisablesColor(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	assert.Equal(t, "x", C(fgRed, "x"))
	assert.Equal(t, "->", Current().ArrowRight)
}

func TestForcedColor(t *testing.T) {
	SetTheme("classic")
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
	assert.Equal(t, "x", C("", "x"))
}

func TestUnknownThemeIsClassic(t *testing.T) {
	SetTheme("sparkly")
	assert.Equal(t, "→", Current().ArrowRight)
	assert.Equal(t, "←", Current().ArrowLeft)
}

func TestOKAndFail(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")
	var buf bytes.Buffer
	OK(&buf, "toggled")
	Fail(&buf, "offline")
	assert.Equal(t, "✔ toggled\n✖ offline\n", buf.String())
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", Ratio(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", Ratio(0, 0, 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Milk", Truncate("Milk", 10))
	assert.Equal(t, "Oat mil...", Truncate("Oat milk barista edition", 10))
	assert.Equal(t, "Milk", Truncate("Milk", 2))
}

func TestWidthFallsBackWhenNotATerminal(t *testing.T) {
	// go test's stdout is a pipe or file.
	assert.Equal(t, 80, Width(40, 80))
}

func TestSetColorMode(t *testing.T) {
	SetTheme("classic")
	t.Cleanup(func() { SetColorForcing(false, false) })

	require.NoError(t, SetColorMode("always"))
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))

	require.NoError(t, SetColorMode("never"))
	assert.Equal(t, "x", C(fgRed, "x"))

	// go test's stdout is not a terminal
	require.NoError(t, SetColorMode("auto"))
	assert.Equal(t, "x", C(fgRed, "x"))

	assert.Error(t, SetColorMode("sometimes"))
}

func TestMonoStaysPlainWhenForced(t *testing.T) {
	SetTheme("mono")
	SetColorForcing(true, false)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})
	assert.Equal(t, "x", C(fgRed, "x"))

	SetTheme("classic")
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"), "leaving mono does not undo forcing")
}
