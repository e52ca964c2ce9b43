package render

import (
	"image"
	"image/color"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
)

const (
	bannerHeight   = 80
	headlineOffset = 8
	subtitleOffset = 32
	footnoteOffset = 56

	subtitleText = "vCard Contact QR Code"
	footnoteText = "Works with iPhone & Android Camera"
)

var (
	labelWhite    = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	footnoteColor = color.NRGBA{R: 0xAA, G: 0xCB, B: 0xFF, A: 0xFF}
)

// labelFaces holds the three font faces used on the banner
type labelFaces struct {
	headline font.Face
	subtitle font.Face
	footnote font.Face
}

// Compositor overlays a themed banner and label text onto a rendered
// QR symbol
type Compositor struct {
	logger    *logrus.Logger
	newCanvas func(width, height int) Canvas
	faces     *labelFaces
	faceErr   error
}

// NewCompositor creates a new compositor. Font faces are loaded once and
// reused; they are read-only after construction.
func NewCompositor(logger *logrus.Logger) *Compositor {
	c := &Compositor{
		logger:    logger,
		newCanvas: NewCanvas,
	}
	c.faces, c.faceErr = loadFaces()
	if c.faceErr != nil {
		logger.Warnf("Banner fonts unavailable, composites will degrade to plain symbols: %v", c.faceErr)
	}
	return c
}

// Compose places the symbol above a banner filled with the theme's primary
// color and draws the label in the accent color. Identical inputs produce
// pixel-identical output. Fails with a RenderError when font resources are
// unavailable; callers recover by using the plain symbol instead.
func (c *Compositor) Compose(symbol image.Image, theme models.Theme, label string) (image.Image, error) {
	if c.faceErr != nil {
		return nil, &apperrors.RenderError{Stage: "font loading", Err: c.faceErr}
	}

	bounds := symbol.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	canvas := c.newCanvas(width, height+bannerHeight)
	canvas.PasteImage(symbol, image.Point{})

	palette := theme.Palette()
	canvas.FillRegion(image.Rect(0, height, width, height+bannerHeight), palette.Primary)

	drawCentered(canvas, label, c.faces.headline, width, height+headlineOffset, palette.Accent)
	drawCentered(canvas, subtitleText, c.faces.subtitle, width, height+subtitleOffset, labelWhite)
	drawCentered(canvas, footnoteText, c.faces.footnote, width, height+footnoteOffset, footnoteColor)

	return canvas.Image(), nil
}

// drawCentered draws one horizontally centered text line whose top edge
// sits at the given y position
func drawCentered(canvas Canvas, text string, face font.Face, width, top int, col color.Color) {
	textWidth := font.MeasureString(face, text).Ceil()
	x := (width - textWidth) / 2
	if x < 0 {
		x = 0
	}
	baseline := top + face.Metrics().Ascent.Ceil()
	canvas.DrawText(text, face, image.Pt(x, baseline), col)
}

// loadFaces parses the embedded Go fonts at the banner's fixed sizes
func loadFaces() (*labelFaces, error) {
	headline, err := newFace(gobold.TTF, 17)
	if err != nil {
		return nil, err
	}
	subtitle, err := newFace(goregular.TTF, 12)
	if err != nil {
		return nil, err
	}
	footnote, err := newFace(goitalic.TTF, 10)
	if err != nil {
		return nil, err
	}
	return &labelFaces{headline: headline, subtitle: subtitle, footnote: footnote}, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
