package util

import (
	"strings"
	"unicode/utf8"

	"blurbgen/internal/models"
)

// htmlReplacer escapes the characters significant in HTML markup, quotes included.
// Single quotes become &#x27; so escaped values match what browsers and the
// original form page expect.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&#x27;",
)

// EscapeHTML neutralizes markup in user input before it reaches a prompt.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// NormalizeInput trims both fields and validates them. Length is counted in
// characters on the trimmed, unescaped value.
func NormalizeInput(productName, category string) (string, string, error) {
	productName = strings.TrimSpace(productName)
	category = strings.TrimSpace(category)

	if productName == "" || category == "" {
		return "", "", &models.ValidationError{Err: models.ErrMissingField}
	}
	if tooLong(productName) || tooLong(category) {
		return "", "", &models.ValidationError{Err: models.ErrInputTooLong}
	}
	return productName, category, nil
}

// SanitizeRequest validates req and, when escape is set, HTML-escapes both fields.
func SanitizeRequest(req models.GenerationRequest, escape bool) (models.GenerationRequest, error) {
	productName, category, err := NormalizeInput(req.ProductName, req.Category)
	if err != nil {
		return models.GenerationRequest{}, err
	}
	if escape {
		productName = EscapeHTML(productName)
		category = EscapeHTML(category)
	}
	return models.GenerationRequest{ProductName: productName, Category: category}, nil
}

func tooLong(s string) bool {
	return utf8.RuneCountInString(s) > models.MaxInputLength
}
