package receipt

import (
	"fmt"
	"strings"
)

// ValidationError reports a submitted document that is not a structured
// object or is missing required fields.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "receipt must be a JSON object"
	}
	return fmt.Sprintf("receipt missing required fields: %s", strings.Join(e.Missing, ", "))
}

// NotFoundError reports an identifier unknown to the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("receipt not found: %s", e.ID)
}
