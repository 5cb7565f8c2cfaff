package iban_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breutech/epcqr/internal/domain/iban"
	"github.com/breutech/epcqr/internal/domain/validation"
)

func TestValidate_KnownGood(t *testing.T) {
	for _, id := range []string{
		"GB82WEST12345698765432",
		"BE44001981860045",
		"DE89370400440532013000",
	} {
		assert.NoError(t, iban.Validate(id), "iban %q", id)
	}
}

func TestValidate_SpacesAndCaseAreIrrelevant(t *testing.T) {
	require.NoError(t, iban.Validate("gb82 west 1234 5698 7654 32"))
	// Re-sanitizing an already clean identifier changes nothing.
	clean := iban.Normalize("gb82 west 1234 5698 7654 32")
	assert.Equal(t, "GB82WEST12345698765432", clean)
	assert.NoError(t, iban.Validate(clean))
}

func TestValidate_SingleCharacterMutationsFail(t *testing.T) {
	const valid = "GB82WEST12345698765432"
	for i := 4; i < len(valid); i++ {
		if valid[i] < '0' || valid[i] > '9' {
			continue
		}
		mutated := []byte(valid)
		mutated[i] = '0' + (valid[i]-'0'+1)%10
		err := iban.Validate(string(mutated))
		assert.ErrorIs(t, err, validation.NewError(iban.Field, validation.CodeChecksumMismatch), "mutation at %d", i)
	}
}

func TestValidate_StructuralFailures(t *testing.T) {
	cases := []string{
		"82GBWEST12345698765432", // digits before letters
		"GBAAWEST12345698765432", // letters where check digits belong
		"GB82",                   // too short
		"GB82WEST12345698765432001122334455667788", // too long
	}
	for _, id := range cases {
		err := iban.Validate(id)
		assert.ErrorIs(t, err, validation.NewError(iban.Field, validation.CodeMalformedStructure), "iban %q", id)
	}
}

func TestValidate_Missing(t *testing.T) {
	err := iban.Validate("  ")
	assert.ErrorIs(t, err, validation.NewError(iban.Field, validation.CodeRequiredFieldMissing))
}

func TestValidate_ChecksumMismatch(t *testing.T) {
	err := iban.Validate("GB82WEST12345698765433")

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, iban.Field, verr.Field)
	assert.Equal(t, validation.CodeChecksumMismatch, verr.Code)
}
