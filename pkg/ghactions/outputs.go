// Package ghactions writes to the file-based channels GitHub Actions exposes
// to a step: the step summary (GITHUB_STEP_SUMMARY) and the step outputs
// (GITHUB_OUTPUT). Both are append-only; writers never truncate them.
package ghactions

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// OutputName names a step output.
type OutputName string

// DelimiterPrefix starts every heredoc delimiter, as in the actions toolkit.
const DelimiterPrefix = "ghadelimiter_"

// NewDelimiter returns a fresh collision-resistant heredoc delimiter.
func NewDelimiter() string {
	return DelimiterPrefix + uuid.NewString()
}

// Outputs appends named values to a step outputs sink.
type Outputs struct {
	w io.Writer

	// delimiter generates one heredoc delimiter per multi-line value.
	delimiter func() string
}

// NewOutputs returns an Outputs appending to w.
func NewOutputs(w io.Writer) *Outputs {
	return &Outputs{w: w, delimiter: NewDelimiter}
}

// WithDelimiter replaces the heredoc delimiter generator.
func (o *Outputs) WithDelimiter(gen func() string) *Outputs {
	o.delimiter = gen

	return o
}

// Set appends a single-line value as "name=value".
func (o *Outputs) Set(name OutputName, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("output %s: value spans multiple lines", name)
	}
	if _, err := fmt.Fprintf(o.w, "%s=%s\n", name, value); err != nil {
		return fmt.Errorf("could not write output %s: %w", name, err)
	}

	return nil
}

// SetMultiline appends value bracketed by a freshly generated delimiter:
//
//	name<<delimiter
//	value
//	delimiter
func (o *Outputs) SetMultiline(name OutputName, value string) error {
	delim := o.delimiter()
	if strings.Contains(string(name), delim) || strings.Contains(value, delim) {
		return fmt.Errorf("output %s: value contains delimiter %q", name, delim)
	}
	if _, err := fmt.Fprintf(o.w, "%s<<%s\n%s\n%s\n", name, delim, value, delim); err != nil {
		return fmt.Errorf("could not write output %s: %w", name, err)
	}

	return nil
}

// SetStrings appends values as a single-line JSON array of strings.
func (o *Outputs) SetStrings(name OutputName, values []string) error {
	return o.Set(name, EncodeStrings(values))
}

// EncodeStrings encodes values as a compact JSON array. Control characters
// are escaped, so the result never spans lines.
func EncodeStrings(values []string) string {
	var e jx.Encoder
	e.ArrStart()
	for _, v := range values {
		e.Str(v)
	}
	e.ArrEnd()

	return e.String()
}
