package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports which required product draft fields were empty
// and which carried malformed values. The store is never touched when one
// is returned.
type ValidationError struct {
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return "invalid product draft"
	}
	return strings.Join(parts, "; ")
}

// DuplicateCodeError is returned when a draft reuses an existing item
// code. Codes are unique within the store at all times.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("item code %q already exists", e.Code)
}
