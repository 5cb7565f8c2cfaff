package generateogm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/breutech/epcqr/internal/domain/ogm"
	"github.com/breutech/epcqr/internal/domain/validation"
	"github.com/breutech/epcqr/internal/usecase/generateogm"
	"github.com/breutech/epcqr/internal/usecase/generateogm/mocks"
)

func TestGenerateOGMUseCase_SuppliedBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The source is only consulted when no base is supplied.
	src := mocks.NewMockDigitSource(ctrl)
	uc := generateogm.NewUseCase(ogm.NewGenerator(src))

	resp, err := uc.Execute("1234567890")

	require.NoError(t, err)
	assert.Equal(t, "1234567890", resp.Base)
	assert.Equal(t, "02", resp.CheckDigits)
	assert.Equal(t, "+++123/4567/89002+++", resp.Formatted)
}

func TestGenerateOGMUseCase_RandomBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockDigitSource(ctrl)
	src.EXPECT().Digits(10).Return("7761504738")

	uc := generateogm.NewUseCase(ogm.NewGenerator(src))

	resp, err := uc.Execute("")

	require.NoError(t, err)
	assert.Equal(t, "7761504738", resp.Base)
	assert.Equal(t, "+++776/1504/73874+++", resp.Formatted)
}

func TestGenerateOGMUseCase_ShortBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockDigitSource(ctrl)
	uc := generateogm.NewUseCase(ogm.NewGenerator(src))

	_, err := uc.Execute("1234")

	assert.ErrorIs(t, err, validation.NewError(ogm.Field, validation.CodeBaseNumberLength))
}
