package applescript

import (
	"fmt"
	"strings"
	"time"

	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

// AppleScript parses `date "..."` literals through locale-aware text
// parsing, so dates are rendered as fixed en-US long-form strings.
const (
	scriptDateLayout       = "January 2, 2006 3:04:05 PM"
	scriptAllDayDateLayout = "January 2, 2006"
)

// Layouts accepted for ISO-8601 request input.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Layouts AppleScript may use when rendering `date as string` on an en-US
// system, with and without the weekday and "at" separator.
var scriptOutputLayouts = []string{
	"Monday, January 2, 2006 at 3:04:05 PM",
	"January 2, 2006 at 3:04:05 PM",
	"Monday, January 2, 2006 3:04:05 PM",
	scriptDateLayout,
	"Monday, January 2, 2006",
	scriptAllDayDateLayout,
	time.RFC3339,
}

// ToScriptDate renders an ISO-8601 timestamp as AppleScript date-time text.
func ToScriptDate(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return t.Local().Format(scriptDateLayout), nil
}

// ToScriptAllDayDate renders an ISO-8601 date as AppleScript date-only text.
func ToScriptAllDayDate(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return t.Local().Format(scriptAllDayDateLayout), nil
}

// ParseISO parses an ISO-8601 request date, with or without an offset or
// time-of-day. Failures carry the VALIDATION_ERROR code.
func ParseISO(iso string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, iso, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, reminders.NewValidationError(fmt.Sprintf("invalid date: %s", iso))
}

// FromScriptDate converts AppleScript date text back to RFC 3339 in UTC.
// Empty text, the "missing value" marker, and anything unparseable all
// yield nil; callers treat nil as absent, never as an error.
func FromScriptDate(text string) *string {
	text = strings.TrimSpace(text)
	if text == "" || text == "missing value" {
		return nil
	}
	for _, layout := range scriptOutputLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			iso := t.UTC().Format(time.RFC3339)
			return &iso
		}
	}
	return nil
}
