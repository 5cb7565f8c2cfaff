package validation

import "fmt"

// Code is a stable, enumerable identifier for a validation failure.
// The presentation layer maps codes to user-facing messages; the core
// never formats messages itself.
type Code string

const (
	CodeMalformedStructure     Code = "malformed_structure"
	CodeChecksumMismatch       Code = "checksum_mismatch"
	CodeBaseNumberLength       Code = "base_number_length"
	CodeRequiredFieldMissing   Code = "required_field_missing"
	CodeConflictingReference   Code = "conflicting_reference"
	CodeInvalidReferencePrefix Code = "invalid_reference_prefix"
	CodeRangeViolation         Code = "range_violation"
	CodeUnknownPurposeCode     Code = "unknown_purpose_code"
)

// Error reports a single validation failure: which field is at fault
// and which taxonomy code applies. A nil *Error means valid.
type Error struct {
	Field string
	Code  Code
}

func NewError(field string, code Code) *Error {
	return &Error{Field: field, Code: code}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Code)
}

// Is makes errors.Is match on the code alone, so callers can test for
// a failure class without caring which field triggered it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Field != "" && t.Field != e.Field {
		return false
	}
	return t.Code == e.Code
}
