package model

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "X"
	gridPosDead  = "O"

	clearCmd = "clear"
)

// TerminalRenderer prints generations as a bordered table
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil.
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out}
}

// Display renders alive on a height x width table. Row 1 is printed last,
// at the bottom.
func (r *TerminalRenderer) Display(height, width int, alive AliveSet) error {
	grid, err := ToDense(height, width, alive)
	if err != nil {
		return err
	}

	separator := "+" + strings.Repeat("-+", width) + "\n"

	var b strings.Builder
	b.WriteString(separator)
	for row := height - 1; row >= 0; row-- {
		b.WriteString("|")
		for col := range width {
			if grid.cells[row][col] {
				b.WriteString(gridPosAlive)
			} else {
				b.WriteString(gridPosDead)
			}
			b.WriteString("|")
		}
		b.WriteString("\n")
		b.WriteString(separator)
	}

	_, err = io.WriteString(r.Out, b.String())
	return errors.Wrap(err, "[Display] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
