package vcard

import (
	"strings"

	"qr-contact-card/internal/apperrors"
	"qr-contact-card/internal/models"
)

// escaper escapes the characters that would break the vCard grammar.
// Line terminators become the literal two-character sequence `\n` so a
// field value can never terminate its own line.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\r", `\n`,
	"\n", `\n`,
	",", `\,`,
	";", `\;`,
)

// unescaper reverses escaper; used for display labels and tests
var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\,`, ",",
	`\;`, ";",
)

// Sanitize trims, validates and escapes a raw field set. It is a pure
// function: the input value is not modified. Fails with a ValidationError
// when name is empty after trimming.
func Sanitize(fields models.ContactFields) (models.ContactFields, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return models.ContactFields{}, &apperrors.ValidationError{
			Field:   "name",
			Message: "name is required",
		}
	}

	website := strings.TrimSpace(fields.Website)
	if website != "" && !strings.HasPrefix(website, "http") {
		website = "https://" + website
	}

	return models.ContactFields{
		Name:         Escape(name),
		Title:        Escape(strings.TrimSpace(fields.Title)),
		Organization: Escape(strings.TrimSpace(fields.Organization)),
		MobilePhone:  Escape(strings.TrimSpace(fields.MobilePhone)),
		WorkPhone:    Escape(strings.TrimSpace(fields.WorkPhone)),
		Email:        Escape(strings.TrimSpace(fields.Email)),
		Website:      Escape(website),
		LinkedIn:     Escape(strings.TrimSpace(fields.LinkedIn)),
		Address:      Escape(strings.TrimSpace(fields.Address)),
		Note:         Escape(strings.TrimSpace(fields.Note)),
	}, nil
}

// Escape escapes backslashes, commas, semicolons and line terminators
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape
func Unescape(s string) string {
	return unescaper.Replace(s)
}
