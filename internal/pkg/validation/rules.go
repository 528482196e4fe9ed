package validation

import (
	"strconv"
	"strings"
)

// MinRecordFields is the number of leading fields a course line needs (identifier and name).
var MinRecordFields = 2

// StringValidation checks a single string value
type StringValidation struct {
	Value    string
	Required bool
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	return true
}

// OptionValidation checks console input against a fixed set of menu options
type OptionValidation struct {
	Raw     string
	Allowed []int
}

// NewOptionValidation creates a new option validation for the raw input line
func NewOptionValidation(raw string, allowed ...int) *OptionValidation {
	return &OptionValidation{Raw: raw, Allowed: allowed}
}

// Parse returns the numeric option. numeric reports whether the input was an
// integer at all; ok reports whether it is one of the allowed options.
func (v *OptionValidation) Parse() (option int, numeric bool, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v.Raw))
	if err != nil {
		return 0, false, false
	}
	for _, a := range v.Allowed {
		if a == n {
			return n, true, true
		}
	}
	return n, true, false
}

// ValidRecord reports whether split record fields carry a usable identifier and name.
func ValidRecord(fields []string) bool {
	if len(fields) < MinRecordFields {
		return false
	}
	return NewStringValidation(fields[0]).Validate() && NewStringValidation(fields[1]).Validate()
}
