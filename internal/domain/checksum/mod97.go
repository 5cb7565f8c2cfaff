// Package checksum implements the ISO 7064 MOD 97-10 primitive shared
// by IBAN validation and ISO 11649 creditor-reference check digits.
package checksum

import (
	"errors"
	"fmt"
)

var ErrInvalidCharacter = errors.New("mod 97-10: input must contain only digits and upper-case letters")

// Mod9710 maps letters to their numeric values (A=10 .. Z=35), treats
// the result as one large decimal numeral and returns its remainder
// modulo 97. The reduction runs digit by digit so the numeral never
// needs arbitrary-precision arithmetic.
//
// The caller is responsible for any rearrangement (IBANs move the
// first four characters to the end; RF references append "RF" plus
// check digits to the body) before calling.
func Mod9710(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidCharacter)
	}
	rem := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			rem = (rem*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			v := int(r-'A') + 10
			rem = (rem*10 + v/10) % 97
			rem = (rem*10 + v%10) % 97
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
	}
	return rem, nil
}

// DigitsMod97 is the plain numeric variant used by the Belgian
// structured-communication check digits: no letter mapping, digits
// only.
func DigitsMod97(digits string) (int, error) {
	rem := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
		rem = (rem*10 + int(r-'0')) % 97
	}
	return rem, nil
}
