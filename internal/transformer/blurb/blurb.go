package blurb

import (
	"fmt"
	"strings"
)

// BuildPrompt returns the prompt sent to a text model for one product.
func BuildPrompt(productName, category string) string {
	return fmt.Sprintf("Write a compelling one-line marketing description for %s, a %s product: ", productName, category)
}

// ExtractDescription turns a raw model continuation into a one-sentence blurb.
// The first occurrence of prompt is removed, the rest trimmed, and the text cut
// after the first '.'. Abbreviations and decimals are cut too.
func ExtractDescription(prompt, raw string) string {
	description := raw
	if prompt != "" {
		description = strings.Replace(raw, prompt, "", 1)
	}
	description = strings.TrimSpace(description)

	if i := strings.IndexByte(description, '.'); i >= 0 {
		return description[:i+1]
	}
	return description
}
