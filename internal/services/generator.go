package services

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/sirupsen/logrus"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
	"qr-contact-card/internal/render"
	"qr-contact-card/internal/vcard"
)

// SymbolRenderer encodes a contact record into a QR symbol image
type SymbolRenderer interface {
	Render(record string, theme models.Theme) (image.Image, error)
}

// Compositor overlays the themed banner onto a rendered symbol
type Compositor interface {
	Compose(symbol image.Image, theme models.Theme, label string) (image.Image, error)
}

// Generator runs the contact card pipeline: sanitize, encode, render,
// composite, serialize. Every invocation is independent; no state is
// shared between requests.
type Generator struct {
	renderer   SymbolRenderer
	compositor Compositor
	noteLimit  int
	logger     *logrus.Logger
}

// NewGenerator creates a new card generator
func NewGenerator(renderer SymbolRenderer, compositor Compositor, noteLimit int, logger *logrus.Logger) *Generator {
	return &Generator{
		renderer:   renderer,
		compositor: compositor,
		noteLimit:  noteLimit,
		logger:     logger,
	}
}

// Preview generates the composite card and returns it as a base64 PNG
// together with the raw vCard record
func (g *Generator) Preview(fields models.ContactFields, theme models.Theme) (render.PreviewPayload, error) {
	img, record, err := g.generate(fields, theme)
	if err != nil {
		return render.PreviewPayload{}, err
	}
	return render.NewPreviewPayload(img, record)
}

// Download generates the composite card as PNG bytes with a filename
// derived from the contact name
func (g *Generator) Download(fields models.ContactFields, theme models.Theme) (render.DownloadPayload, error) {
	img, _, err := g.generate(fields, theme)
	if err != nil {
		return render.DownloadPayload{}, err
	}
	return render.NewDownloadPayload(img, strings.TrimSpace(fields.Name))
}

// generate runs the pipeline up to the composite image. A RenderError
// from the compositor degrades to the plain unbannered symbol instead of
// failing the request.
func (g *Generator) generate(fields models.ContactFields, theme models.Theme) (image.Image, string, error) {
	sanitized, err := vcard.Sanitize(fields)
	if err != nil {
		return nil, "", err
	}

	if g.noteLimit > 0 && len(sanitized.Note) > g.noteLimit {
		return nil, "", &apperrors.CapacityError{
			Field:   "note",
			Message: fmt.Sprintf("note exceeds %d characters", g.noteLimit),
		}
	}

	record, err := vcard.Encode(sanitized)
	if err != nil {
		return nil, "", err
	}

	symbol, err := g.renderer.Render(record, theme)
	if err != nil {
		return nil, "", err
	}

	label := strings.TrimSpace(fields.Name)
	composite, err := g.compositor.Compose(symbol, theme, label)
	if err != nil {
		var renderErr *apperrors.RenderError
		if !errors.As(err, &renderErr) {
			return nil, "", err
		}
		g.logger.Warnf("Compositing failed, falling back to plain symbol: %v", err)
		composite = symbol
	}

	return composite, record, nil
}
