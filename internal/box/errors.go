package box

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when there are no content lines to lay out.
var ErrEmptyQuery = errors.New("no query specified")

// InvariantError reports a layout computation that produced an impossible
// geometry, such as a line wider than the interior width.
type InvariantError struct {
	// Row names the row kind being built ("top", "middle")
	Row string
	// Text is the offending content
	Text string
	// Width is the interior width the row was built for
	Width int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("layout invariant violated: %s row %q is wider than interior width %d", e.Row, e.Text, e.Width)
}
