package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
	"qr-contact-card/internal/render"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	logger := testLogger()
	return NewGenerator(render.NewSymbolRenderer(4, logger), render.NewCompositor(logger), 500, logger)
}

func TestPreviewEndToEnd(t *testing.T) {
	generator := newTestGenerator(t)

	payload, err := generator.Preview(models.ContactFields{
		Name:         "Praveen Sompalli",
		Organization: "Sompalli & Co",
		Title:        "Qualified Chartered Accountant",
		MobilePhone:  "+918686018476",
		Email:        "praveen@sompalliandco.com",
		Website:      "https://sompalliandco.com/about",
	}, models.ThemeNavy)
	require.NoError(t, err)

	assert.NotEmpty(t, payload.EncodedImage)

	lines := strings.Split(payload.RawRecord, "\r\n")
	assert.Equal(t, "BEGIN:VCARD", lines[0])
	assert.Equal(t, "END:VCARD", lines[len(lines)-1])
	for _, expected := range []string{
		"FN:Praveen Sompalli",
		"N:Sompalli;Praveen;;;",
		"ORG:Sompalli & Co",
		"TITLE:Qualified Chartered Accountant",
		"TEL;TYPE=CELL:+918686018476",
		"EMAIL;TYPE=INTERNET:praveen@sompalliandco.com",
		"URL:https://sompalliandco.com/about",
	} {
		assert.Contains(t, lines, expected)
	}

	// The embedded image must be a decodable PNG
	data, err := base64.StdEncoding.DecodeString(payload.EncodedImage)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

func TestPreviewRequiresName(t *testing.T) {
	generator := newTestGenerator(t)

	_, err := generator.Preview(models.ContactFields{Organization: "Acme"}, models.ThemeNavy)
	require.Error(t, err)

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPreviewNoteBoundary(t *testing.T) {
	generator := newTestGenerator(t)

	atCap := models.ContactFields{Name: "Jane", Note: strings.Repeat("a", 500)}
	_, err := generator.Preview(atCap, models.ThemeNavy)
	require.NoError(t, err, "note at the cap must succeed")

	overCap := models.ContactFields{Name: "Jane", Note: strings.Repeat("a", 501)}
	_, err = generator.Preview(overCap, models.ThemeNavy)
	require.Error(t, err, "note over the cap must fail")

	var capacityErr *apperrors.CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, "note", capacityErr.Field)
}

func TestPreviewIdempotent(t *testing.T) {
	generator := newTestGenerator(t)
	fields := models.ContactFields{Name: "Jane Doe", Email: "jane@acme.test"}

	first, err := generator.Preview(fields, models.ThemeForest)
	require.NoError(t, err)
	second, err := generator.Preview(fields, models.ThemeForest)
	require.NoError(t, err)

	assert.Equal(t, first.EncodedImage, second.EncodedImage, "identical input must produce pixel-identical output")
	assert.Equal(t, first.RawRecord, second.RawRecord)
}

func TestPreviewEscapesName(t *testing.T) {
	generator := newTestGenerator(t)

	payload, err := generator.Preview(models.ContactFields{Name: "Doe; Jane, Jr"}, models.ThemeNavy)
	require.NoError(t, err)

	assert.Contains(t, payload.RawRecord, `FN:Doe\; Jane\, Jr`)
}

func TestDownloadPayload(t *testing.T) {
	generator := newTestGenerator(t)

	payload, err := generator.Download(models.ContactFields{Name: "Jane Doe"}, models.ThemeMaroon)
	require.NoError(t, err)

	assert.Equal(t, "jane_doe_qr_contact.png", payload.FileName)
	assert.Equal(t, "image/png", payload.MimeType)

	_, err = png.Decode(bytes.NewReader(payload.FileBytes))
	require.NoError(t, err)
}

// failingCompositor always reports missing render resources
type failingCompositor struct{}

func (failingCompositor) Compose(image.Image, models.Theme, string) (image.Image, error) {
	return nil, &apperrors.RenderError{Stage: "font loading", Err: errors.New("no fonts")}
}

func TestPreviewFallsBackToPlainSymbol(t *testing.T) {
	logger := testLogger()
	generator := NewGenerator(render.NewSymbolRenderer(4, logger), failingCompositor{}, 500, logger)

	payload, err := generator.Preview(models.ContactFields{Name: "Jane Doe"}, models.ThemeNavy)
	require.NoError(t, err, "render failures must degrade, not fail the request")

	data, err := base64.StdEncoding.DecodeString(payload.EncodedImage)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// The fallback is the bare square symbol without the banner
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

// brokenRenderer simulates a symbol capacity failure
type brokenRenderer struct{}

func (brokenRenderer) Render(string, models.Theme) (image.Image, error) {
	return nil, &apperrors.CapacityError{Field: "record", Message: "payload exceeds QR symbol capacity"}
}

func TestPreviewSurfacesCapacityError(t *testing.T) {
	logger := testLogger()
	generator := NewGenerator(brokenRenderer{}, render.NewCompositor(logger), 500, logger)

	_, err := generator.Preview(models.ContactFields{Name: "Jane"}, models.ThemeNavy)
	require.Error(t, err)

	var capacityErr *apperrors.CapacityError
	assert.ErrorAs(t, err, &capacityErr)
}
