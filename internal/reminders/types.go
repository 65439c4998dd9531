package reminders

import (
	"encoding/json"
	"fmt"
)

// Priority is the numeric priority scale used by the macOS Reminders app.
// The codes are non-contiguous and must round-trip exactly.
type Priority int

const (
	PriorityNone   Priority = 0
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 5
	PriorityLow    Priority = 9
)

var priorityByName = map[string]Priority{
	"none":   PriorityNone,
	"high":   PriorityHigh,
	"medium": PriorityMedium,
	"low":    PriorityLow,
}

// ParsePriority maps a priority name to its numeric code.
func ParsePriority(name string) (Priority, error) {
	p, ok := priorityByName[name]
	if !ok {
		return PriorityNone, NewValidationError(fmt.Sprintf("invalid priority %q (use none, low, medium, high)", name))
	}
	return p, nil
}

// Name returns the priority name for a numeric code. Unknown codes report
// as "none".
func (p Priority) Name() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "none"
	}
}

// Reminder is one task item as reported by the Reminders app. All date
// fields hold RFC 3339 text; nil means the field is unset in the app.
type Reminder struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Body             *string  `json:"body"`
	DueDate          *string  `json:"dueDate"`
	AllDayDueDate    *string  `json:"allDayDueDate"`
	RemindMeDate     *string  `json:"remindMeDate"`
	Priority         Priority `json:"priority"`
	Completed        bool     `json:"completed"`
	CompletionDate   *string  `json:"completionDate"`
	CreationDate     string   `json:"creationDate"`
	ModificationDate string   `json:"modificationDate"`
	ListID           string   `json:"listId"`
	ListName         string   `json:"listName"`
}

// ReminderList is a named collection of reminders.
type ReminderList struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ReminderCount int    `json:"reminderCount"`
}

// OptionalString distinguishes an absent JSON field from an explicit null.
// Set reports whether the key was present at all; Valid reports whether it
// carried a non-null value.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// CreateReminderInput holds the fields for creating one reminder.
type CreateReminderInput struct {
	Name          string `json:"name"`
	ListName      string `json:"listName"`
	Body          string `json:"body,omitempty"`
	DueDate       string `json:"dueDate,omitempty"`
	AllDayDueDate string `json:"allDayDueDate,omitempty"`
	RemindMeDate  string `json:"remindMeDate,omitempty"`
	Priority      string `json:"priority,omitempty"`
}

// UpdateReminderInput holds a partial update. Only fields whose keys were
// present in the request are applied; a present null clears the field.
type UpdateReminderInput struct {
	ID            string         `json:"id"`
	ListName      string         `json:"listName"`
	Name          *string        `json:"name"`
	Body          OptionalString `json:"body"`
	DueDate       OptionalString `json:"dueDate"`
	AllDayDueDate OptionalString `json:"allDayDueDate"`
	RemindMeDate  OptionalString `json:"remindMeDate"`
	Priority      *string        `json:"priority"`
	Completed     *bool          `json:"completed"`
}

// ReminderRef addresses one reminder by id within a named list.
type ReminderRef struct {
	ID       string `json:"id"`
	ListName string `json:"listName"`
}

// OperationResult is the outcome of one single or batched operation.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// BatchResult aggregates the per-item outcomes of a batch operation.
// Success is true only when no item failed.
type BatchResult struct {
	Success        bool              `json:"success"`
	TotalProcessed int               `json:"totalProcessed"`
	Succeeded      int               `json:"succeeded"`
	Failed         int               `json:"failed"`
	Results        []OperationResult `json:"results"`
}
