package reminders

import (
	"testing"
	"time"
)

func due(iso string) *string { return &iso }

func sample() []Reminder {
	body := "pick up 2% milk"
	return []Reminder{
		{ID: "r1", Name: "Buy milk", Body: &body, DueDate: due("2025-06-01T10:00:00Z"), Priority: PriorityHigh},
		{ID: "r2", Name: "Call dentist", DueDate: due("2025-06-02T10:00:00Z"), Completed: true},
		{ID: "r3", Name: "Ship package", Priority: PriorityHigh},
		{ID: "r4", Name: "Water plants", DueDate: due("2025-06-03T10:00:00Z"), Priority: PriorityLow},
	}
}

func ids(in []Reminder) []string {
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = r.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Reminder, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestFilter_Empty(t *testing.T) {
	assertIDs(t, Filter{}.Apply(sample()), "r1", "r2", "r3", "r4")
}

func TestFilter_Completed(t *testing.T) {
	completed := true
	assertIDs(t, Filter{Completed: &completed}.Apply(sample()), "r2")
	completed = false
	assertIDs(t, Filter{Completed: &completed}.Apply(sample()), "r1", "r3", "r4")
}

func TestFilter_Priority(t *testing.T) {
	p := PriorityHigh
	assertIDs(t, Filter{Priority: &p}.Apply(sample()), "r1", "r3")
}

func TestFilter_DueBeforeStrict(t *testing.T) {
	// The cutoff equals r2's due instant exactly; strict comparison excludes
	// it, and r3 without a due date never matches.
	cutoff := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	assertIDs(t, Filter{DueBefore: &cutoff}.Apply(sample()), "r1")
}

func TestFilter_DueAfterStrict(t *testing.T) {
	cutoff := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	assertIDs(t, Filter{DueAfter: &cutoff}.Apply(sample()), "r4")
}

func TestFilter_SearchNameAndBody(t *testing.T) {
	assertIDs(t, Filter{SearchText: "MILK"}.Apply(sample()), "r1")
	// Body match only; r2..r4 have nil or non-matching bodies but their
	// names are still checked without panicking.
	assertIDs(t, Filter{SearchText: "2%"}.Apply(sample()), "r1")
	assertIDs(t, Filter{SearchText: "dentist"}.Apply(sample()), "r2")
}

func TestFilter_LimitAppliedLast(t *testing.T) {
	completed := false
	got := Filter{Completed: &completed, Limit: 2}.Apply(sample())
	assertIDs(t, got, "r1", "r3")
}

func TestFilter_Combined(t *testing.T) {
	p := PriorityHigh
	cutoff := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	assertIDs(t, Filter{Priority: &p, DueBefore: &cutoff}.Apply(sample()), "r1")
}

func TestFilter_UnparseableDueDateExcluded(t *testing.T) {
	bad := "June 1st"
	in := []Reminder{{ID: "r1", Name: "Task", DueDate: &bad}}
	cutoff := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	assertIDs(t, Filter{DueBefore: &cutoff}.Apply(in))
}
