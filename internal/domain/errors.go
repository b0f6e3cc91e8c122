package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrSeatAlreadyTaken = errors.New("seat is already taken for this movie session")
)

// ValidationError reports a single invalid input field. It carries the field
// name so clients can render a precise, actionable message.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
