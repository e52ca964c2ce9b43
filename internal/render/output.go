package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// PreviewPayload carries the embeddable image encoding and the exact
// record text that was encoded into it
type PreviewPayload struct {
	EncodedImage string
	RawRecord    string
}

// DownloadPayload carries the serialized image for file transport
type DownloadPayload struct {
	FileBytes []byte
	FileName  string
	MimeType  string
}

// EncodePNG serializes an image to PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// NewPreviewPayload serializes the image to base64 PNG alongside the
// untouched record text
func NewPreviewPayload(img image.Image, record string) (PreviewPayload, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return PreviewPayload{}, err
	}
	return PreviewPayload{
		EncodedImage: base64.StdEncoding.EncodeToString(data),
		RawRecord:    record,
	}, nil
}

// NewDownloadPayload serializes the image to PNG bytes with a
// filesystem-safe filename derived from the contact name
func NewDownloadPayload(img image.Image, contactName string) (DownloadPayload, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return DownloadPayload{}, err
	}
	return DownloadPayload{
		FileBytes: data,
		FileName:  fileNameSlug(contactName) + "_qr_contact.png",
		MimeType:  "image/png",
	}, nil
}

// fileNameSlug lowercases the name, maps separators to underscores and
// strips everything that is not alphanumeric
func fileNameSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "contact"
	}
	return b.String()
}
