package reminders

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"none":   0,
		"high":   1,
		"medium": 5,
		"low":    9,
	}
	for name, want := range cases {
		got, err := ParsePriority(name)
		if err != nil {
			t.Errorf("ParsePriority(%q) error: %v", name, err)
		}
		if got != want {
			t.Errorf("ParsePriority(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestParsePriority_Invalid(t *testing.T) {
	_, err := ParsePriority("urgent")
	var typed *Error
	if err == nil {
		t.Fatal("expected error for unknown priority name")
	}
	if !errors.As(err, &typed) || typed.Code != CodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestPriorityName(t *testing.T) {
	cases := map[Priority]string{
		PriorityNone:   "none",
		PriorityHigh:   "high",
		PriorityMedium: "medium",
		PriorityLow:    "low",
		Priority(7):    "none",
	}
	for p, want := range cases {
		if got := p.Name(); got != want {
			t.Errorf("Priority(%d).Name() = %q, want %q", p, got, want)
		}
	}
}

func TestPriorityRoundTrip(t *testing.T) {
	for _, name := range []string{"none", "high", "medium", "low"} {
		p, err := ParsePriority(name)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("round trip %q -> %d -> %q", name, p, p.Name())
		}
	}
}

func TestUpdateInput_FieldPresence(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var in UpdateReminderInput
		if err := json.Unmarshal([]byte(`{"id":"r1","listName":"Inbox"}`), &in); err != nil {
			t.Fatal(err)
		}
		if in.Body.Set {
			t.Error("absent body must not be marked present")
		}
	})

	t.Run("null", func(t *testing.T) {
		var in UpdateReminderInput
		if err := json.Unmarshal([]byte(`{"id":"r1","body":null}`), &in); err != nil {
			t.Fatal(err)
		}
		if !in.Body.Set || in.Body.Valid {
			t.Errorf("explicit null should be Set and not Valid: %+v", in.Body)
		}
	})

	t.Run("value", func(t *testing.T) {
		var in UpdateReminderInput
		if err := json.Unmarshal([]byte(`{"id":"r1","body":"notes"}`), &in); err != nil {
			t.Fatal(err)
		}
		if !in.Body.Set || !in.Body.Valid || in.Body.Value != "notes" {
			t.Errorf("unexpected body: %+v", in.Body)
		}
	})
}

func TestReminderJSONKeys(t *testing.T) {
	r := Reminder{ID: "r1", Name: "Task", ListID: "l1", ListName: "Inbox"}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "name", "body", "dueDate", "allDayDueDate", "remindMeDate", "priority", "completed", "completionDate", "creationDate", "modificationDate", "listId", "listName"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing %q in encoded reminder: %s", key, data)
		}
	}
	if m["body"] != nil {
		t.Errorf("unset body should encode as null, got %v", m["body"])
	}
}
