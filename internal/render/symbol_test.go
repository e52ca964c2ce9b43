package render

import (
	"image"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRenderProducesSquareSymbol(t *testing.T) {
	renderer := NewSymbolRenderer(10, testLogger())

	img, err := renderer.Render("BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jane\r\nEND:VCARD", models.ThemeNavy)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, bounds.Dx(), bounds.Dy(), "symbol must be square")
	assert.Greater(t, bounds.Dx(), 0)
}

func TestRenderGrowsWithPayload(t *testing.T) {
	renderer := NewSymbolRenderer(10, testLogger())

	small, err := renderer.Render("short", models.ThemeNavy)
	require.NoError(t, err)
	large, err := renderer.Render(strings.Repeat("payload ", 60), models.ThemeNavy)
	require.NoError(t, err)

	assert.Greater(t, large.Bounds().Dx(), small.Bounds().Dx(),
		"longer payload must select a larger symbol version")
}

func TestRenderUsesThemePrimaryColor(t *testing.T) {
	renderer := NewSymbolRenderer(4, testLogger())
	palette := models.ThemeMaroon.Palette()

	img, err := renderer.Render("themed symbol", models.ThemeMaroon)
	require.NoError(t, err)

	found := false
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !found; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && !found; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pr, pg, pb, _ := palette.Primary.RGBA()
			if r == pr && g == pg && b == pb {
				found = true
			}
		}
	}
	assert.True(t, found, "dark modules must use the theme primary color")
}

func TestRenderCapacityExceeded(t *testing.T) {
	renderer := NewSymbolRenderer(10, testLogger())

	// Far beyond the maximum QR capacity at any recovery level
	_, err := renderer.Render(strings.Repeat("x", 8000), models.ThemeNavy)
	require.Error(t, err)

	var capacityErr *apperrors.CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, "record", capacityErr.Field)
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewSymbolRenderer(6, testLogger())

	first, err := renderer.Render("same payload", models.ThemePurple)
	require.NoError(t, err)
	second, err := renderer.Render("same payload", models.ThemePurple)
	require.NoError(t, err)

	require.Equal(t, first.Bounds(), second.Bounds())
	assertPixelIdentical(t, first, second)
}

func assertPixelIdentical(t *testing.T, a, b image.Image) {
	t.Helper()
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				t.Fatalf("images differ at (%d,%d)", x, y)
			}
		}
	}
}
