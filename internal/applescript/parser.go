package applescript

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

// Reminder record column positions, matching the order the script
// builders emit. The parser and builders version this layout together.
const (
	colID = iota
	colName
	colBody
	colDueDate
	colAllDayDueDate
	colRemindMeDate
	colPriority
	colCompleted
	colCompletionDate
	colCreationDate
	colModificationDate
	colListID
)

// ParseLists converts delimited list records into structured lists.
// Empty or whitespace-only input yields an empty slice, never an error.
func ParseLists(output string) []reminders.ReminderList {
	var lists []reminders.ReminderList
	for _, line := range recordLines(output) {
		lists = append(lists, listFromLine(line))
	}
	if lists == nil {
		lists = []reminders.ReminderList{}
	}
	return lists
}

// ParseList converts a single list record; nil for empty input.
func ParseList(output string) *reminders.ReminderList {
	if strings.TrimSpace(output) == "" {
		return nil
	}
	list := listFromLine(strings.TrimSpace(output))
	return &list
}

// ParseReminders converts delimited reminder records fetched from the
// named list. Empty input yields an empty slice, never an error.
func ParseReminders(output, listName string) []reminders.Reminder {
	var items []reminders.Reminder
	for _, line := range recordLines(output) {
		items = append(items, reminderFromLine(line, listName))
	}
	if items == nil {
		items = []reminders.Reminder{}
	}
	return items
}

// ParseReminder converts a single reminder record; nil for empty input.
func ParseReminder(output, listName string) *reminders.Reminder {
	if strings.TrimSpace(output) == "" {
		return nil
	}
	r := reminderFromLine(strings.TrimSpace(output), listName)
	return &r
}

func recordLines(output string) []string {
	if strings.TrimSpace(output) == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func listFromLine(line string) reminders.ReminderList {
	parts := strings.Split(line, Separator)
	return reminders.ReminderList{
		ID:            field(parts, 0),
		Name:          field(parts, 1),
		ReminderCount: intField(parts, 2),
	}
}

// reminderFromLine fills per-field defaults for any missing or malformed
// column: empty string for text, 0 for numerics, false for booleans, nil
// for optional dates, and the current wall clock for the mandatory
// creation/modification dates. Truncated lines resolve the same way.
func reminderFromLine(line, listName string) reminders.Reminder {
	parts := strings.Split(line, Separator)
	if len(parts) < colListID+1 {
		logrus.WithField("columns", len(parts)).Debug("short reminder record, filling defaults")
	}
	return reminders.Reminder{
		ID:               field(parts, colID),
		Name:             field(parts, colName),
		Body:             textField(parts, colBody),
		DueDate:          dateField(parts, colDueDate),
		AllDayDueDate:    dateField(parts, colAllDayDueDate),
		RemindMeDate:     dateField(parts, colRemindMeDate),
		Priority:         reminders.Priority(intField(parts, colPriority)),
		Completed:        field(parts, colCompleted) == "true",
		CompletionDate:   dateField(parts, colCompletionDate),
		CreationDate:     mandatoryDateField(parts, colCreationDate),
		ModificationDate: mandatoryDateField(parts, colModificationDate),
		ListID:           field(parts, colListID),
		ListName:         listName,
	}
}

func field(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[i])
}

func textField(parts []string, i int) *string {
	s := field(parts, i)
	if s == "" {
		return nil
	}
	return &s
}

func intField(parts []string, i int) int {
	n, err := strconv.Atoi(field(parts, i))
	if err != nil {
		return 0
	}
	return n
}

func dateField(parts []string, i int) *string {
	if i >= len(parts) {
		return nil
	}
	return FromScriptDate(parts[i])
}

// mandatoryDateField falls back to the current wall clock: creation and
// modification dates are required downstream, so an unparseable value is
// degraded rather than propagated as a failure.
func mandatoryDateField(parts []string, i int) string {
	if iso := dateField(parts, i); iso != nil {
		return *iso
	}
	logrus.WithField("column", i).Debug("unparseable mandatory date, using current time")
	return time.Now().UTC().Format(time.RFC3339)
}
