package model

import (
	"bufio"
	"io"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws boards as block characters
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the board row by row
func (r *TerminalRenderer) Display(b Board) error {
	w := bufio.NewWriter(r.Out)
	for row := range b.Height() {
		for col := range b.Width() {
			if b.IsAlive(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return cmd.Run()
}
