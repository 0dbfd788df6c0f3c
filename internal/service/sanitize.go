package service

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	maxFieldLength = 1000
	maxEmailLength = 254
)

var (
	scriptProtoRe = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRe   = regexp.MustCompile(`(?i)on\w+=`)

	// Conservative local@domain.tld shape. Deliverability is the mail
	// provider's problem; this only rejects obvious garbage.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	allowedExtensions = map[string]bool{
		".pdf":  true,
		".doc":  true,
		".docx": true,
		".txt":  true,
	}
)

// Sanitize normalizes applicant-submitted text: strips angle brackets,
// javascript: URI prefixes and inline event-handler attributes, trims
// whitespace, and truncates to 1000 characters. Idempotent.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	// Removing a match can splice the surrounding text into a new match
	// ("jjavascript:avascript:" loses the inner one and becomes
	// "javascript:"), so strip to a fixed point.
	for {
		prev := s
		s = scriptProtoRe.ReplaceAllString(s, "")
		s = eventAttrRe.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > maxFieldLength {
		// Trim again: truncation can expose trailing whitespace.
		s = strings.TrimSpace(string(runes[:maxFieldLength]))
	}
	return s
}

// ValidateEmail reports whether addr looks like a deliverable address.
func ValidateEmail(addr string) bool {
	return len(addr) <= maxEmailLength && emailRe.MatchString(addr)
}

// ValidateFileName accepts only resume formats the talent team can open.
func ValidateFileName(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}
