// Package sanitize normalizes user-entered display strings and URLs before
// they reach storage. Names and notes are stored as plain text with markup
// stripped; URLs must be absolute http or https or they are dropped.
package sanitize

import (
	"net/url"
	"strings"
)

// Text strips anything that looks like markup and trims whitespace. Tag
// content is kept, the tags themselves are not.
func Text(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	inTag := false
	for _, r := range input {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// URL returns the trimmed URL when it parses as absolute http/https,
// otherwise the empty string.
func URL(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	if parsed.Host == "" {
		return ""
	}
	return trimmed
}
