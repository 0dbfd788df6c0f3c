package service

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Jane Doe", "Jane Doe"},
		{"trims whitespace", "  Jane Doe \n", "Jane Doe"},
		{"strips angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"strips javascript prefix", "javascript:alert(1)", "alert(1)"},
		{"strips javascript prefix case-insensitive", "JaVaScRiPt:alert(1)", "alert(1)"},
		{"strips event handlers", "x onclick=steal() y", "x steal() y"},
		{"strips interleaved javascript prefix", "jjavascript:avascript:alert(1)", "alert(1)"},
		{"strips interleaved event handler", "oonclick=nclick=x", "x"},
		{"empty", "", ""},
		{"only whitespace", " \t ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in)
			if got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("a", 1500)
	got := Sanitize(long)
	if len(got) != 1000 {
		t.Fatalf("expected 1000 chars, got %d", len(got))
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Jane Doe",
		"  padded  ",
		"<b>bold</b>",
		"javascript:javascript:alert(1)",
		"onload=x onclick=y",
		// Stripping a match must not splice the remainder into a fresh match.
		"jjavascript:avascript:alert(1)",
		"oonclick=nclick=x",
		"jjjavascript:avascript:avascript:alert(1)",
		"ojavascript:nclick=x",
		strings.Repeat("b", 2000),
		// Truncation landing on a space must not leave trimmable output.
		strings.Repeat("c", 999) + " d",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "jane.doe@example.co.uk", "x+tag@sub.domain.io"}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Fatalf("expected %q to be valid", e)
		}
	}

	invalid := []string{
		"not-an-email",
		"missing@tld",
		"@nobody.com",
		"two@@signs.com",
		"spaces in@side.com",
		"",
		strings.Repeat("a", 250) + "@b.com", // over 254
	}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Fatalf("expected %q to be invalid", e)
		}
	}
}

func TestValidateFileName(t *testing.T) {
	valid := []string{"resume.pdf", "resume.PDF", "cv.doc", "cv.docx", "notes.txt"}
	for _, f := range valid {
		if !ValidateFileName(f) {
			t.Fatalf("expected %q to be allowed", f)
		}
	}

	invalid := []string{"malware.exe", "resume.pdf.exe", "archive.zip", "resume", ""}
	for _, f := range invalid {
		if ValidateFileName(f) {
			t.Fatalf("expected %q to be rejected", f)
		}
	}
}
