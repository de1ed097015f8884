package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds the services surface to the handlers. Each maps to one HTTP
// status; handlers dispatch with errors.Is / errors.As instead of matching
// message text.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// ValidationError is a caller-correctable problem with a named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validationError converts the validator's field map into a single
// ValidationError, picking the first field in sorted order so the reported
// field is deterministic.
func validationError(errs map[string]string) error {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return &ValidationError{Field: fields[0], Message: errs[fields[0]]}
}

// checkLineSafe rejects values the line-oriented store cannot hold.
func checkLineSafe(field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &ValidationError{Field: field, Message: "must not contain line breaks"}
	}
	return nil
}
