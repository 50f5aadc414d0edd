package capture

import (
	"fmt"
	"io"
	"strings"
)

// Output joins the committed texts of fields in order. Each text already
// carries its trailing newline.
func Output(fields []*Field) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.Text())
	}
	return b.String()
}

// Emit writes the captured output to w in a single write.
func Emit(w io.Writer, fields []*Field) error {
	out := Output(fields)
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write captured input: %w", err)
	}
	return nil
}
