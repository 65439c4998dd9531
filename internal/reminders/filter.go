package reminders

import (
	"strings"
	"time"
)

// Query limits for get_reminders.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Filter narrows a fetched reminder set in memory. Nil pointer fields are
// not applied. Limit is applied after every other criterion and never
// changes which records are considered, only how many are returned.
type Filter struct {
	Completed  *bool
	Priority   *Priority
	DueBefore  *time.Time
	DueAfter   *time.Time
	SearchText string
	Limit      int
}

// Apply filters in a fixed order: completion status, priority, due-before,
// due-after, text search, then the result cap. Input order is preserved.
func (f Filter) Apply(in []Reminder) []Reminder {
	out := make([]Reminder, 0, len(in))
	search := strings.ToLower(f.SearchText)

	for _, r := range in {
		if f.Completed != nil && r.Completed != *f.Completed {
			continue
		}
		if f.Priority != nil && r.Priority != *f.Priority {
			continue
		}
		if f.DueBefore != nil && !dueStrictlyBefore(r, *f.DueBefore) {
			continue
		}
		if f.DueAfter != nil && !dueStrictlyAfter(r, *f.DueAfter) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		out = append(out, r)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// Date comparisons are strict; reminders without a due date never match.
func dueStrictlyBefore(r Reminder, cutoff time.Time) bool {
	due, ok := parseDue(r)
	return ok && due.Before(cutoff)
}

func dueStrictlyAfter(r Reminder, cutoff time.Time) bool {
	due, ok := parseDue(r)
	return ok && due.After(cutoff)
}

func parseDue(r Reminder) (time.Time, bool) {
	if r.DueDate == nil {
		return time.Time{}, false
	}
	due, err := time.Parse(time.RFC3339, *r.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// matchesSearch checks name and body case-insensitively. A nil body never
// matches but does not exclude the record when the name matches.
func matchesSearch(r Reminder, search string) bool {
	if strings.Contains(strings.ToLower(r.Name), search) {
		return true
	}
	return r.Body != nil && strings.Contains(strings.ToLower(*r.Body), search)
}
