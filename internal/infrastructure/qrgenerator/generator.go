package qrgenerator

import (
	qr "github.com/skip2/go-qrcode"

	"github.com/breutech/epcqr/internal/domain/qrcode"
)

type Generator struct {
	defaultSize int
}

func NewGenerator(defaultSize int) *Generator {
	return &Generator{defaultSize: defaultSize}
}

func (g *Generator) Generate(payload string, opts qrcode.Options) ([]byte, error) {
	size := opts.Size
	if size <= 0 {
		size = g.defaultSize
	}

	code, err := qr.New(payload, recoveryLevel(opts.Level))
	if err != nil {
		return nil, err
	}
	code.DisableBorder = opts.DisableBorder
	return code.PNG(size)
}

func recoveryLevel(level qrcode.RecoveryLevel) qr.RecoveryLevel {
	switch level {
	case qrcode.LevelLow:
		return qr.Low
	case qrcode.LevelQuart:
		return qr.High
	case qrcode.LevelHighest:
		return qr.Highest
	default:
		return qr.Medium
	}
}
