package render

import (
	"image"
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
)

// SymbolRenderer encodes contact records into QR symbol images
type SymbolRenderer struct {
	logger     *logrus.Logger
	moduleSize int
}

// NewSymbolRenderer creates a new symbol renderer. moduleSize is the pixel
// width of a single QR module.
func NewSymbolRenderer(moduleSize int, logger *logrus.Logger) *SymbolRenderer {
	return &SymbolRenderer{
		logger:     logger,
		moduleSize: moduleSize,
	}
}

// Render encodes the record into the smallest QR symbol that fits it at
// the High recovery level (25% damage tolerance). Dark modules are drawn
// in the theme's primary color on a white background.
func (r *SymbolRenderer) Render(record string, theme models.Theme) (image.Image, error) {
	r.logger.Debugf("Rendering QR symbol for %d byte record", len(record))

	q, err := qrcode.New(record, qrcode.High)
	if err != nil {
		r.logger.Errorf("Failed to encode QR symbol: %v", err)
		return nil, &apperrors.CapacityError{
			Field:   "record",
			Message: "payload exceeds QR symbol capacity",
		}
	}

	q.ForegroundColor = theme.Palette().Primary
	q.BackgroundColor = color.White

	// Bitmap includes the quiet zone, so the symbol scales to an exact
	// number of pixels per module.
	side := len(q.Bitmap()) * r.moduleSize
	return q.Image(side), nil
}
