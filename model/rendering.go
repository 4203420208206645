package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

const (
	glyphAlive = '#'
	glyphDead  = '.'

	rowPrefix = "| "
	rowSuffix = " |\n"

	bannerFormat = ".__________________________ Iteration %d __________________________.\n"

	clearCmd = "clear"
)

// countingWriter tracks how many bytes reached the underlying writer
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the board row by row, one glyph per cell. The returned count
// is the number of bytes accepted by w.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for y := range b.height {
		// bufio errors are sticky and surface from Flush
		_, _ = bw.WriteString(rowPrefix)
		for x := range b.width {
			glyph := byte(glyphDead)
			if b.cells[y*b.width+x] == rules.Alive {
				glyph = glyphAlive
			}
			_ = bw.WriteByte(glyph)
		}
		_, _ = bw.WriteString(rowSuffix)
	}
	if err := bw.Flush(); err != nil {
		return cw.n, errors.Wrap(err, "[WriteTo] failed to write board")
	}
	return cw.n, nil
}

// String renders the board the same way WriteTo does
func (b *Board) String() string {
	var sb strings.Builder
	_, _ = b.WriteTo(&sb)
	return sb.String()
}

// TerminalRenderer prints generations to a text console
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer that writes to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Display prints the iteration banner followed by the board and a blank line
func (r *TerminalRenderer) Display(iteration int, b *Board) error {
	if _, err := fmt.Fprintf(r.Out, bannerFormat, iteration); err != nil {
		return errors.Wrapf(err, "[Display] failed to write banner for iteration %d", iteration)
	}
	if _, err := b.WriteTo(r.Out); err != nil {
		return errors.Wrapf(err, "[Display] failed to write iteration %d", iteration)
	}
	if _, err := fmt.Fprintln(r.Out); err != nil {
		return errors.Wrapf(err, "[Display] failed to terminate iteration %d", iteration)
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if r.Out == nil {
		cmd.Stdout = os.Stdout
	}
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
