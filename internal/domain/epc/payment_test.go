package epc_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breutech/epcqr/internal/domain/epc"
	"github.com/breutech/epcqr/internal/domain/validation"
)

func amt(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validRequest() epc.PaymentRequest {
	return epc.PaymentRequest{
		IBAN:            "BE44 0019 8186 0045",
		BIC:             "GEBABEBB",
		BeneficiaryName: "Breutech Solutions",
		Amount:          amt("1.00"),
		PurposeCode:     "IVPT",
	}
}

func TestAssemble_FieldOrder(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.StructuredReference = "RF18 5390 0754 7034"
	req.AdditionalInfo = "Invoice 2024-001"

	payload, err := assembler.Assemble(req)
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "BCD", lines[0])
	assert.Equal(t, "002", lines[1])
	assert.Equal(t, "1", lines[2])
	assert.Equal(t, "SCT", lines[3])
	assert.Equal(t, "GEBABEBB", lines[4])
	assert.Equal(t, "Breutech Solutions", lines[5])
	assert.Equal(t, "BE44001981860045", lines[6])
	assert.Equal(t, "EUR1.00", lines[7])
	assert.Equal(t, "IVPT", lines[8])
	assert.Equal(t, "RF18539007547034", lines[9])
	assert.Equal(t, "", lines[10])
	assert.Equal(t, "Invoice 2024-001", lines[11])
}

func TestAssemble_TrailingBlanksOmitted(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	payload, err := assembler.Assemble(epc.PaymentRequest{
		IBAN:            "BE44001981860045",
		BeneficiaryName: "Breutech Solutions",
	})
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	assert.Equal(t, []string{"BCD", "002", "1", "SCT", "", "Breutech Solutions", "BE44001981860045"}, lines)
}

func TestAssemble_InvalidIBAN(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.IBAN = "BE44001981860046"

	_, err := assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldIBAN, validation.CodeChecksumMismatch))
}

func TestAssemble_MissingName(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.BeneficiaryName = "   "

	_, err := assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldName, validation.CodeRequiredFieldMissing))
}

func TestAssemble_MutualExclusion(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	// Both set must always conflict, even when each would be valid on
	// its own.
	req := validRequest()
	req.StructuredReference = "RF18539007547034"
	req.RemittanceText = "Invoice Jan 2024"

	_, err := assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldReference, validation.CodeConflictingReference))
}

func TestAssemble_ReferencePrefix(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.StructuredReference = "FR1234567"

	_, err := assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldReference, validation.CodeInvalidReferencePrefix))
}

func TestAssemble_OGMTravelsInRemittance(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.RemittanceText = "+++776/1504/73874+++"

	payload, err := assembler.Assemble(req)
	require.NoError(t, err)
	assert.Contains(t, payload, "\n+++776/1504/73874+++")
}

func TestAssemble_AmountBoundaries(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.Amount = amt("999999999.99")
	payload, err := assembler.Assemble(req)
	require.NoError(t, err)
	assert.Contains(t, payload, "EUR999999999.99")

	req.Amount = amt("1000000000.00")
	_, err = assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldAmount, validation.CodeRangeViolation))

	req.Amount = amt("-0.01")
	_, err = assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldAmount, validation.CodeRangeViolation))

	req.Amount = amt("1.005")
	_, err = assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldAmount, validation.CodeRangeViolation))
}

func TestAssemble_AmountRendering(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.Amount = amt("0.00")
	payload, err := assembler.Assemble(req)
	require.NoError(t, err)
	assert.Contains(t, payload, "\nEUR0.00\n", "a present zero amount is rendered, not blanked")

	req.Amount = amt("7")
	payload, err = assembler.Assemble(req)
	require.NoError(t, err)
	assert.Contains(t, payload, "\nEUR7.00\n")

	req.Amount = nil
	payload, err = assembler.Assemble(req)
	require.NoError(t, err)
	lines := strings.Split(payload, "\n")
	assert.Equal(t, "", lines[7], "absent amount leaves a blank line")
}

func TestAssemble_UnknownPurposeCode(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.PurposeCode = "ZZZZ"

	_, err := assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldPurpose, validation.CodeUnknownPurposeCode))
}

func TestAssemble_RegistryIsInjected(t *testing.T) {
	assembler := epc.NewAssembler(epc.Registry{"TEST": "Test Payment"})

	req := validRequest()
	req.PurposeCode = "TEST"
	_, err := assembler.Assemble(req)
	assert.NoError(t, err)

	req.PurposeCode = "SALA"
	_, err = assembler.Assemble(req)
	assert.ErrorIs(t, err, validation.NewError(epc.FieldPurpose, validation.CodeUnknownPurposeCode))
}

func TestAssemble_TextFieldsSanitized(t *testing.T) {
	assembler := epc.NewAssembler(epc.DefaultRegistry())

	req := validRequest()
	req.BeneficiaryName = "  " + strings.Repeat("N", 80) + "  "
	req.RemittanceText = strings.Repeat("R", 150)

	payload, err := assembler.Assemble(req)
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	assert.Equal(t, strings.Repeat("N", 70), lines[5])
	assert.Equal(t, strings.Repeat("R", 140), lines[10])
}

func TestDefaultRegistry(t *testing.T) {
	registry := epc.DefaultRegistry()

	assert.True(t, registry.Contains("SALA"))
	assert.True(t, registry.Contains("IVPT"))
	assert.True(t, registry.Contains("CHAR"))
	assert.True(t, registry.Contains("RENT"))
	assert.False(t, registry.Contains("NOPE"))
	assert.Equal(t, "Salary Payment", registry["SALA"])
	assert.GreaterOrEqual(t, len(registry.Codes()), 20)
	assert.IsIncreasing(t, registry.Codes())
}
