package formstate

import (
	"errors"
	"fmt"
	"strings"
)

// Rule codes emitted by the built-in schema DSL. External validation
// capabilities are free to use their own.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeTooFewItems   = "too_few_items"
	CodeTooManyItems  = "too_many_items"
)

// FieldError is a single validation violation. Path addresses the offending
// node in the dotted/bracketed grammar (for example: users[0].name).
type FieldError struct {
	Path    string
	Code    string
	Message string
	// Params carries structured parameters (e.g. {"min": 8, "got": 5}) for
	// observability and custom message rendering.
	Params map[string]any
}

// FieldErrors is the aggregate a validation pass produces. It implements
// error so schema capabilities can return it directly.
type FieldErrors []FieldError

// Error summarizes the first few violations.
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(fe)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", fe[i].Code, fe[i].Path)
	}
	if n := len(fe); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendFieldErrors appends violations to the destination, initializing the
// slice when needed.
func AppendFieldErrors(dst FieldErrors, more ...FieldError) FieldErrors {
	if dst == nil {
		dst = FieldErrors{}
	}
	return append(dst, more...)
}

// AsFieldErrors extracts FieldErrors from an error using errors.As internally.
func AsFieldErrors(err error) (FieldErrors, bool) {
	if err == nil {
		return nil, false
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
