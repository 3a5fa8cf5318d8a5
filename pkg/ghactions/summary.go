package ghactions

import (
	"bufio"
	"fmt"
	"io"
)

// Summary appends markdown to a step summary sink.
type Summary struct {
	w io.Writer
}

// NewSummary returns a Summary appending to w.
func NewSummary(w io.Writer) *Summary {
	return &Summary{w: w}
}

// Section appends a level-two heading followed by lines, one per line.
func (s *Summary) Section(heading string, lines []string) error {
	bw := bufio.NewWriter(s.w)
	fmt.Fprintf(bw, "## %s\n", heading)
	for _, line := range lines {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write summary: %w", err)
	}

	return nil
}
