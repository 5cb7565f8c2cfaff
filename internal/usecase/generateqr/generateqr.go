package generateqr

import (
	"github.com/breutech/epcqr/internal/domain/epc"
	"github.com/breutech/epcqr/internal/domain/qrcode"
)

type Request struct {
	Payment epc.PaymentRequest
	Options qrcode.Options
}

type UseCase struct {
	assembler *epc.Assembler
	generator qrcode.Generator
}

func NewUseCase(assembler *epc.Assembler, generator qrcode.Generator) *UseCase {
	return &UseCase{
		assembler: assembler,
		generator: generator,
	}
}

// Payload validates the payment request and returns the payload text
// without rendering.
func (uc *UseCase) Payload(payment epc.PaymentRequest) (string, error) {
	return uc.assembler.Assemble(payment)
}

// Execute validates the payment request, assembles the payload and
// renders it as a PNG raster.
func (uc *UseCase) Execute(req Request) ([]byte, error) {
	payload, err := uc.assembler.Assemble(req.Payment)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(payload, req.Options)
}
