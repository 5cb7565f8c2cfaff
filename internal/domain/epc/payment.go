// Package epc validates payment requests and assembles the EPC069-12
// "BCD" QR payload: twelve fields in fixed order, newline separated.
package epc

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/breutech/epcqr/internal/domain/iban"
	"github.com/breutech/epcqr/internal/domain/reference"
	"github.com/breutech/epcqr/internal/domain/sanitize"
	"github.com/breutech/epcqr/internal/domain/validation"
)

// Header constants fixed by the standard. Version 002 drops the BIC
// requirement; charset 1 is UTF-8.
const (
	ServiceTag     = "BCD"
	Version        = "002"
	CharSet        = "1"
	Identification = "SCT"
	Currency       = "EUR"
)

const (
	maxNameLength       = 70
	maxRemittanceLength = 140
	maxInfoLength       = 70
	payloadLineCount    = 12
)

// Field names reported in validation failures.
const (
	FieldIBAN           = iban.Field
	FieldBIC            = "bic"
	FieldName           = "beneficiary_name"
	FieldAmount         = "amount"
	FieldPurpose        = "purpose_code"
	FieldReference      = reference.Field
	FieldRemittance     = "remittance_text"
	FieldAdditionalInfo = "additional_info"
)

var maxAmount = decimal.New(99999999999, -2) // 999999999.99

// PaymentRequest carries one QR generation attempt. A nil Amount means
// "amount not specified" and produces a blank amount line. At most one
// of RemittanceText and StructuredReference may be set; a Belgian OGM
// string travels in RemittanceText, the standard has no field for it.
type PaymentRequest struct {
	IBAN                string
	BIC                 string
	BeneficiaryName     string
	Amount              *decimal.Decimal
	PurposeCode         string
	RemittanceText      string
	StructuredReference string
	AdditionalInfo      string
}

// Assembler validates requests and serializes them into the payload.
// It is stateless apart from the read-only registry and safe for
// concurrent use.
type Assembler struct {
	registry Registry
}

func NewAssembler(registry Registry) *Assembler {
	return &Assembler{registry: registry}
}

// Assemble validates req and returns the payload text. Validation is
// fail-fast: the first offending field is reported and the rest are
// not inspected. Nothing is ever coerced silently except the
// documented sanitization (trim, truncate, alphanumeric filtering).
func (a *Assembler) Assemble(req PaymentRequest) (string, error) {
	if err := iban.Validate(req.IBAN); err != nil {
		return "", err
	}

	name := sanitize.FreeText(req.BeneficiaryName, maxNameLength)
	if name == "" {
		return "", validation.NewError(FieldName, validation.CodeRequiredFieldMissing)
	}

	ref := reference.Normalize(req.StructuredReference)
	remittance := sanitize.FreeText(req.RemittanceText, maxRemittanceLength)
	if ref != "" && remittance != "" {
		return "", validation.NewError(FieldReference, validation.CodeConflictingReference)
	}
	if ref != "" {
		if err := reference.Validate(ref); err != nil {
			return "", err
		}
	}

	amount, err := a.amountLine(req.Amount)
	if err != nil {
		return "", err
	}

	purpose := sanitize.Alphanumeric(req.PurposeCode)
	if purpose != "" && !a.registry.Contains(purpose) {
		return "", validation.NewError(FieldPurpose, validation.CodeUnknownPurposeCode)
	}

	lines := []string{
		ServiceTag,
		Version,
		CharSet,
		Identification,
		sanitize.Alphanumeric(req.BIC),
		name,
		iban.Normalize(req.IBAN),
		amount,
		purpose,
		ref,
		remittance,
		sanitize.FreeText(req.AdditionalInfo, maxInfoLength),
	}

	// Trailing blank lines may be omitted entirely.
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}

func (a *Assembler) amountLine(amount *decimal.Decimal) (string, error) {
	if amount == nil {
		return "", nil
	}
	if amount.IsNegative() || amount.GreaterThan(maxAmount) {
		return "", validation.NewError(FieldAmount, validation.CodeRangeViolation)
	}
	if amount.Exponent() < -2 {
		return "", validation.NewError(FieldAmount, validation.CodeRangeViolation)
	}
	return Currency + amount.StringFixed(2), nil
}
