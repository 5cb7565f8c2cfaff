package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breutech/epcqr/internal/domain/validation"
)

func TestError_Message(t *testing.T) {
	err := validation.NewError("iban", validation.CodeChecksumMismatch)
	assert.Equal(t, "iban: checksum_mismatch", err.Error())
}

func TestError_IsMatchesOnCode(t *testing.T) {
	err := validation.NewError("iban", validation.CodeChecksumMismatch)

	assert.ErrorIs(t, err, validation.NewError("iban", validation.CodeChecksumMismatch))
	assert.ErrorIs(t, err, validation.NewError("", validation.CodeChecksumMismatch), "empty field matches any field")
	assert.NotErrorIs(t, err, validation.NewError("iban", validation.CodeRangeViolation))
	assert.NotErrorIs(t, err, validation.NewError("amount", validation.CodeChecksumMismatch))
}

func TestError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("assembling: %w", validation.NewError("amount", validation.CodeRangeViolation))

	var verr *validation.Error
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "amount", verr.Field)
}
