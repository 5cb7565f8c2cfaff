// Package iban validates IBAN-style account identifiers: structural
// pattern first, then the ISO 7064 MOD 97-10 checksum.
package iban

import (
	"regexp"

	"github.com/breutech/epcqr/internal/domain/checksum"
	"github.com/breutech/epcqr/internal/domain/sanitize"
	"github.com/breutech/epcqr/internal/domain/validation"
)

const Field = "iban"

// Two letters (country), two check digits, then 1-30 letters/digits.
var structure = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)

// Normalize strips spaces and other noise and upper-cases, the form in
// which an IBAN is both validated and emitted into the payload.
func Normalize(raw string) string {
	return sanitize.Alphanumeric(raw)
}

// Validate checks the normalized form of raw. A nil return means the
// identifier is structurally sound and its checksum holds. Purely
// arithmetic; no registry or network lookups.
func Validate(raw string) error {
	id := Normalize(raw)
	if id == "" {
		return validation.NewError(Field, validation.CodeRequiredFieldMissing)
	}
	if !structure.MatchString(id) {
		return validation.NewError(Field, validation.CodeMalformedStructure)
	}
	// Country code and check digits move to the end before reduction.
	rearranged := id[4:] + id[:4]
	rem, err := checksum.Mod9710(rearranged)
	if err != nil || rem != 1 {
		return validation.NewError(Field, validation.CodeChecksumMismatch)
	}
	return nil
}
