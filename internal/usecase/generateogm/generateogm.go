package generateogm

import (
	"github.com/breutech/epcqr/internal/domain/ogm"
)

type Response struct {
	Base        string
	CheckDigits string
	Formatted   string
}

type UseCase struct {
	generator *ogm.Generator
}

func NewUseCase(generator *ogm.Generator) *UseCase {
	return &UseCase{generator: generator}
}

// Execute derives a structured communication from base; an empty base
// produces a random one.
func (uc *UseCase) Execute(base string) (*Response, error) {
	comm, err := uc.generator.Generate(base)
	if err != nil {
		return nil, err
	}
	return &Response{
		Base:        comm.BaseDigits(),
		CheckDigits: comm.CheckDigits(),
		Formatted:   comm.String(),
	}, nil
}
