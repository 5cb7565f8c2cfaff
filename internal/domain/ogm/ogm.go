// Package ogm generates Belgian structured communications
// ("overschrijving met gestructureerde mededeling"): ten base digits
// plus a two-digit modulo-97 check value, rendered +++AAA/BBBB/CCCCC+++.
package ogm

import (
	"math/rand/v2"
	"strings"

	"github.com/breutech/epcqr/internal/domain/checksum"
	"github.com/breutech/epcqr/internal/domain/sanitize"
	"github.com/breutech/epcqr/internal/domain/validation"
)

const Field = "ogm_base"

const baseLength = 10

// StructuredCommunication is immutable once generated.
type StructuredCommunication struct {
	baseDigits  string
	checkDigits string
}

func (c StructuredCommunication) BaseDigits() string {
	return c.baseDigits
}

func (c StructuredCommunication) CheckDigits() string {
	return c.checkDigits
}

// String renders the canonical +++AAA/BBBB/CCCCC+++ form: the twelve
// digits base‖check split into groups of 3, 4 and 5.
func (c StructuredCommunication) String() string {
	full := c.baseDigits + c.checkDigits
	return "+++" + full[0:3] + "/" + full[3:7] + "/" + full[7:12] + "+++"
}

// DigitSource supplies random decimal digits when no base number is
// given. Implementations must be safe for concurrent use.
type DigitSource interface {
	Digits(n int) string
}

type randSource struct{}

func (randSource) Digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

// NewRandSource returns a DigitSource backed by math/rand/v2's shared
// generator, which is safe for concurrent use.
func NewRandSource() DigitSource {
	return randSource{}
}

type Generator struct {
	src DigitSource
}

func NewGenerator(src DigitSource) *Generator {
	return &Generator{src: src}
}

// Generate derives a StructuredCommunication from base. Non-digit
// characters are stripped first; a base longer than ten digits is
// truncated, fewer than ten usable digits is an error. An empty base
// draws ten random digits from the source (a leading zero is allowed,
// as in real OGM numbers).
func (g *Generator) Generate(base string) (StructuredCommunication, error) {
	digits := sanitize.Digits(base)
	if digits == "" {
		digits = g.src.Digits(baseLength)
	}
	if len(digits) < baseLength {
		return StructuredCommunication{}, validation.NewError(Field, validation.CodeBaseNumberLength)
	}
	digits = digits[:baseLength]

	rem, err := checksum.DigitsMod97(digits)
	if err != nil {
		return StructuredCommunication{}, validation.NewError(Field, validation.CodeBaseNumberLength)
	}
	// A zero remainder is written as 97, never 00.
	if rem == 0 {
		rem = 97
	}
	return StructuredCommunication{
		baseDigits:  digits,
		checkDigits: pad2(rem),
	}, nil
}

func pad2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

// IsFormatted reports whether s looks like a rendered OGM
// (+++...+++ wrapper), the marker the payload checker uses to flag
// Belgian communications carried in the remittance field.
func IsFormatted(s string) bool {
	return strings.HasPrefix(s, "+++") && strings.HasSuffix(s, "+++") && len(s) > 6
}
