package qrcode

import "fmt"

// RecoveryLevel is the QR error-correction level.
type RecoveryLevel string

const (
	LevelLow     RecoveryLevel = "L"
	LevelMedium  RecoveryLevel = "M"
	LevelQuart   RecoveryLevel = "Q"
	LevelHighest RecoveryLevel = "H"
)

// ParseRecoveryLevel accepts the single-letter form; empty defaults to
// medium, the level the payment form has always used.
func ParseRecoveryLevel(s string) (RecoveryLevel, error) {
	switch s {
	case "":
		return LevelMedium, nil
	case "L", "M", "Q", "H":
		return RecoveryLevel(s), nil
	default:
		return "", fmt.Errorf("unknown recovery level %q", s)
	}
}

// Options controls the rendered raster.
type Options struct {
	Level RecoveryLevel
	// Size is the image edge in pixels.
	Size int
	// DisableBorder drops the quiet zone around the code.
	DisableBorder bool
}

// Generator renders a text payload into raster image bytes.
type Generator interface {
	Generate(payload string, opts Options) ([]byte, error)
}
