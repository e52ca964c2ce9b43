package vcard

import (
	"fmt"
	"strings"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
)

const (
	recordHeader  = "BEGIN:VCARD"
	recordVersion = "VERSION:3.0"
	recordFooter  = "END:VCARD"
)

// Encode builds a vCard 3.0 record from sanitized contact fields. Line
// order is fixed so identical input always yields an identical record,
// and lines whose source field is empty are omitted entirely.
func Encode(fields models.ContactFields) (string, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return "", &apperrors.EncodingError{Message: "contact fields have empty name"}
	}

	lines := []string{recordHeader, recordVersion}
	lines = append(lines, "FN:"+name)

	family, given := splitName(name)
	lines = append(lines, fmt.Sprintf("N:%s;%s;;;", family, given))

	if fields.Organization != "" {
		lines = append(lines, "ORG:"+fields.Organization)
	}
	if fields.Title != "" {
		lines = append(lines, "TITLE:"+fields.Title)
	}
	if fields.MobilePhone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+fields.MobilePhone)
	}
	if fields.WorkPhone != "" {
		lines = append(lines, "TEL;TYPE=WORK:"+fields.WorkPhone)
	}
	if fields.Email != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+fields.Email)
	}
	if fields.Website != "" {
		lines = append(lines, "URL:"+fields.Website)
	}
	if fields.Address != "" {
		lines = append(lines, fmt.Sprintf("ADR;TYPE=WORK:;;%s;;;;", fields.Address))
	}
	if fields.LinkedIn != "" {
		lines = append(lines, "X-SOCIALPROFILE;type=linkedin:"+fields.LinkedIn)
	}
	if fields.Note != "" {
		lines = append(lines, "NOTE:"+fields.Note)
	}

	lines = append(lines, recordFooter)
	return strings.Join(lines, "\r\n"), nil
}

// splitName splits a full name into family and given components. The last
// whitespace-separated token is the family name and the remainder is the
// given name; a name without whitespace has an empty family name.
func splitName(name string) (family, given string) {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return "", name
	}
	return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
}
