package applescript

import (
	"strings"
	"testing"
)

// unescape reverses Sanitize for round-trip checks.
var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

func TestSanitize_RoundTrip(t *testing.T) {
	inputs := []string{
		`plain text`,
		`say "hello"`,
		`back\slash`,
		"line one\nline two",
		"tab\there\rreturn",
		`mixed "quotes" and \ slashes` + "\n\t",
	}

	for _, in := range inputs {
		escaped := Sanitize(in)
		if got := unescaper.Replace(escaped); got != in {
			t.Errorf("round trip failed for %q: escaped %q, unescaped %q", in, escaped, got)
		}
	}
}

func TestSanitize_NoRawControlCharacters(t *testing.T) {
	escaped := Sanitize("a\nb\"c\\d")
	if strings.ContainsAny(escaped, "\n\r\t") {
		t.Errorf("escaped output still contains raw control characters: %q", escaped)
	}
	if strings.Contains(escaped, `"`) && !strings.Contains(escaped, `\"`) {
		t.Errorf("unescaped quote survived: %q", escaped)
	}
}

func TestSanitize_BackslashFirst(t *testing.T) {
	// A pre-escaped quote must not collapse back into a bare quote.
	escaped := Sanitize(`\"`)
	if escaped != `\\\"` {
		t.Errorf("Sanitize(`\\\"`) = %q, want %q", escaped, `\\\"`)
	}
}
