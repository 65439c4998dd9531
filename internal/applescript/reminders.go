package applescript

import (
	"fmt"
	"strings"

	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

// reminderFields reads every column of one reminder into r*Str variables.
// Optional fields render as empty string so column positions stay fixed.
const reminderFields = `set rId to id of r
    set rName to name of r
    set rBody to body of r
    if rBody is missing value then set rBody to ""

    set rDueDate to due date of r
    if rDueDate is missing value then
      set rDueDateStr to ""
    else
      set rDueDateStr to (rDueDate as string)
    end if

    set rAllDayDueDate to allday due date of r
    if rAllDayDueDate is missing value then
      set rAllDayDueDateStr to ""
    else
      set rAllDayDueDateStr to (rAllDayDueDate as string)
    end if

    set rRemindMeDate to remind me date of r
    if rRemindMeDate is missing value then
      set rRemindMeDateStr to ""
    else
      set rRemindMeDateStr to (rRemindMeDate as string)
    end if

    set rPriority to priority of r
    set rCompleted to completed of r

    set rCompletionDate to completion date of r
    if rCompletionDate is missing value then
      set rCompletionDateStr to ""
    else
      set rCompletionDateStr to (rCompletionDate as string)
    end if

    set rCreationDate to (creation date of r) as string
    set rModDate to (modification date of r) as string`

// reminderRecord concatenates the 12-column record in wire order.
const reminderRecord = `rId & "|||" & rName & "|||" & rBody & "|||" & rDueDateStr & "|||" & rAllDayDueDateStr & "|||" & rRemindMeDateStr & "|||" & rPriority & "|||" & rCompleted & "|||" & rCompletionDateStr & "|||" & rCreationDate & "|||" & rModDate & "|||" & listId`

// GetRemindersFromList builds a script emitting one record per reminder in
// the named list.
func GetRemindersFromList(listName string) string {
	return fmt.Sprintf(`tell application "Reminders"
  set targetList to list "%s"
  set listId to id of targetList
  set output to ""
  repeat with r in reminders of targetList
    %s

    set output to output & %s & linefeed
  end repeat
  return output
end tell`, Sanitize(listName), reminderFields, reminderRecord)
}

// GetReminderByID builds a script returning a single reminder record.
func GetReminderByID(listName, reminderID string) string {
	return fmt.Sprintf(`tell application "Reminders"
  set targetList to list "%s"
  set listId to id of targetList
  set r to reminder id "%s" of targetList

  %s

  return %s
end tell`, Sanitize(listName), Sanitize(reminderID), reminderFields, reminderRecord)
}

// CreateReminder builds a script that creates one reminder and returns its
// id. Only supplied optional fields become properties; a "none" priority is
// omitted entirely so the app's own default applies (the update path
// instead emits the 0 code so priority can be cleared explicitly).
func CreateReminder(in reminders.CreateReminderInput) (string, error) {
	properties := []string{
		fmt.Sprintf("name:\"%s\"", Sanitize(in.Name)),
	}

	if in.Body != "" {
		properties = append(properties, fmt.Sprintf("body:\"%s\"", Sanitize(in.Body)))
	}
	if in.DueDate != "" {
		d, err := ToScriptDate(in.DueDate)
		if err != nil {
			return "", err
		}
		properties = append(properties, fmt.Sprintf("due date:date \"%s\"", d))
	}
	if in.AllDayDueDate != "" {
		d, err := ToScriptAllDayDate(in.AllDayDueDate)
		if err != nil {
			return "", err
		}
		properties = append(properties, fmt.Sprintf("allday due date:date \"%s\"", d))
	}
	if in.RemindMeDate != "" {
		d, err := ToScriptDate(in.RemindMeDate)
		if err != nil {
			return "", err
		}
		properties = append(properties, fmt.Sprintf("remind me date:date \"%s\"", d))
	}
	if in.Priority != "" && in.Priority != "none" {
		p, err := reminders.ParsePriority(in.Priority)
		if err != nil {
			return "", err
		}
		properties = append(properties, fmt.Sprintf("priority:%d", p))
	}

	return fmt.Sprintf(`tell application "Reminders"
  tell list "%s"
    set newReminder to make new reminder with properties {%s}
    return id of newReminder
  end tell
end tell`, Sanitize(in.ListName), strings.Join(properties, ", ")), nil
}

// UpdateReminder builds a script applying one set-statement per field
// present in the update. A present null clears the field by assigning
// missing value; an absent field emits nothing.
func UpdateReminder(in reminders.UpdateReminderInput) (string, error) {
	var statements []string

	if in.Name != nil {
		statements = append(statements, fmt.Sprintf("set name of targetReminder to \"%s\"", Sanitize(*in.Name)))
	}
	if in.Body.Set {
		if !in.Body.Valid {
			statements = append(statements, "set body of targetReminder to missing value")
		} else {
			statements = append(statements, fmt.Sprintf("set body of targetReminder to \"%s\"", Sanitize(in.Body.Value)))
		}
	}
	if in.DueDate.Set {
		stmt, err := dateStatement("due date", in.DueDate, ToScriptDate)
		if err != nil {
			return "", err
		}
		statements = append(statements, stmt)
	}
	if in.AllDayDueDate.Set {
		stmt, err := dateStatement("allday due date", in.AllDayDueDate, ToScriptAllDayDate)
		if err != nil {
			return "", err
		}
		statements = append(statements, stmt)
	}
	if in.RemindMeDate.Set {
		stmt, err := dateStatement("remind me date", in.RemindMeDate, ToScriptDate)
		if err != nil {
			return "", err
		}
		statements = append(statements, stmt)
	}
	if in.Priority != nil {
		p, err := reminders.ParsePriority(*in.Priority)
		if err != nil {
			return "", err
		}
		statements = append(statements, fmt.Sprintf("set priority of targetReminder to %d", p))
	}
	if in.Completed != nil {
		statements = append(statements, fmt.Sprintf("set completed of targetReminder to %t", *in.Completed))
	}

	return fmt.Sprintf(`tell application "Reminders"
  tell list "%s"
    set targetReminder to reminder id "%s"
    %s
    return "success"
  end tell
end tell`, Sanitize(in.ListName), Sanitize(in.ID), strings.Join(statements, "\n    ")), nil
}

func dateStatement(property string, v reminders.OptionalString, encode func(string) (string, error)) (string, error) {
	if !v.Valid {
		return fmt.Sprintf("set %s of targetReminder to missing value", property), nil
	}
	d, err := encode(v.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("set %s of targetReminder to date \"%s\"", property, d), nil
}

// DeleteReminder builds a script deleting one reminder by id.
func DeleteReminder(listName, reminderID string) string {
	return fmt.Sprintf(`tell application "Reminders"
  tell list "%s"
    delete reminder id "%s"
    return "success"
  end tell
end tell`, Sanitize(listName), Sanitize(reminderID))
}

// CompleteReminder builds a script flipping a reminder's completed flag.
// Clearing of the completion date on un-complete is left to the app.
func CompleteReminder(listName, reminderID string, completed bool) string {
	return fmt.Sprintf(`tell application "Reminders"
  tell list "%s"
    set completed of reminder id "%s" to %t
    return "success"
  end tell
end tell`, Sanitize(listName), Sanitize(reminderID), completed)
}
