package apperrors

import "errors"

// Catalog errors
var (
	ErrSourceUnreadable = errors.New("course data source cannot be read")
	ErrMalformedRecord  = errors.New("malformed course record")
)

// Console errors
var (
	ErrInvalidOption = errors.New("invalid menu option")
	ErrInputClosed   = errors.New("input closed")
)

// NewSourceUnreadableError wraps ErrSourceUnreadable with the offending path.
func NewSourceUnreadableError(path string, cause error) error {
	return &CustomError{
		Err:     ErrSourceUnreadable,
		Message: "unable to open: " + path,
		Details: map[string]interface{}{"path": path, "cause": cause},
	}
}

// NewSourceReadError wraps ErrSourceUnreadable for a file that opened but failed mid-read.
func NewSourceReadError(path string, cause error) error {
	return &CustomError{
		Err:     ErrSourceUnreadable,
		Message: "unable to read: " + path,
		Details: map[string]interface{}{"path": path, "cause": cause},
	}
}

// NewMalformedRecordError creates a new custom error describing a skipped line
func NewMalformedRecordError(message string) error {
	return &CustomError{
		Err:     ErrMalformedRecord,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
