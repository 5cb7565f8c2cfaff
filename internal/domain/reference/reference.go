// Package reference handles ISO 11649 structured creditor references:
// "RF" + two check digits + up to 21 alphanumeric characters.
package reference

import (
	"fmt"
	"strings"

	"github.com/breutech/epcqr/internal/domain/checksum"
	"github.com/breutech/epcqr/internal/domain/sanitize"
	"github.com/breutech/epcqr/internal/domain/validation"
)

const Field = "structured_reference"

const (
	minLength = 5
	maxLength = 25
)

// Normalize strips formatting noise; RF references are compared and
// emitted in compact upper-case form.
func Normalize(raw string) string {
	return sanitize.Alphanumeric(raw)
}

// Validate checks the normalized form of raw: RF prefix, length
// bounds, then the MOD 97-10 checksum over body + "RF" + check digits.
func Validate(raw string) error {
	ref := Normalize(raw)
	if ref == "" {
		return validation.NewError(Field, validation.CodeRequiredFieldMissing)
	}
	if !strings.HasPrefix(ref, "RF") {
		return validation.NewError(Field, validation.CodeInvalidReferencePrefix)
	}
	if len(ref) < minLength || len(ref) > maxLength {
		return validation.NewError(Field, validation.CodeMalformedStructure)
	}
	checkDigits := ref[2:4]
	body := ref[4:]
	for _, r := range checkDigits {
		if r < '0' || r > '9' {
			return validation.NewError(Field, validation.CodeMalformedStructure)
		}
	}
	rem, err := checksum.Mod9710(body + "RF" + checkDigits)
	if err != nil || rem != 1 {
		return validation.NewError(Field, validation.CodeChecksumMismatch)
	}
	return nil
}

// ComputeCheckDigits derives the two check digits for a reference
// body, so "RF" + result + body validates. The body is normalized
// first; an empty body cannot carry a reference.
func ComputeCheckDigits(body string) (string, error) {
	body = Normalize(body)
	if body == "" {
		return "", validation.NewError(Field, validation.CodeRequiredFieldMissing)
	}
	if len(body) > maxLength-4 {
		return "", validation.NewError(Field, validation.CodeMalformedStructure)
	}
	rem, err := checksum.Mod9710(body + "RF00")
	if err != nil {
		return "", validation.NewError(Field, validation.CodeMalformedStructure)
	}
	// ISO 11649 keeps check digits in 02..98 for well-formed bodies,
	// but malformed input must not produce a three-digit value.
	cd := (98 - rem) % 100
	return fmt.Sprintf("%02d", cd), nil
}

// Generate builds a complete reference from a body.
func Generate(body string) (string, error) {
	cd, err := ComputeCheckDigits(body)
	if err != nil {
		return "", err
	}
	return "RF" + cd + Normalize(body), nil
}
