package applescript

import "fmt"

// Separator is the field delimiter of the record protocol shared between
// the generated scripts and the parser. It cannot occur in normal text
// content, which keeps column positions stable.
const Separator = "|||"

// GetAllLists returns every list as one id|||name|||count record per line.
const GetAllLists = `tell application "Reminders"
  set output to ""
  repeat with aList in lists
    set listId to id of aList
    set listName to name of aList
    set reminderCount to count of reminders of aList
    set output to output & listId & "|||" & listName & "|||" & reminderCount & linefeed
  end repeat
  return output
end tell`

// CreateList builds a script that makes a new list and returns its id.
func CreateList(name string) string {
	return fmt.Sprintf(`tell application "Reminders"
  set newList to make new list with properties {name:"%s"}
  return id of newList
end tell`, Sanitize(name))
}

// DeleteList builds a script that deletes a list by exact name.
func DeleteList(name string) string {
	return fmt.Sprintf(`tell application "Reminders"
  delete list "%s"
  return "success"
end tell`, Sanitize(name))
}

// RenameList builds a script that renames a list.
func RenameList(currentName, newName string) string {
	return fmt.Sprintf(`tell application "Reminders"
  set name of list "%s" to "%s"
  return "success"
end tell`, Sanitize(currentName), Sanitize(newName))
}

// GetListByName builds a script that returns one list record.
func GetListByName(name string) string {
	return fmt.Sprintf(`tell application "Reminders"
  set targetList to list "%s"
  set listId to id of targetList
  set listName to name of targetList
  set reminderCount to count of reminders of targetList
  return listId & "|||" & listName & "|||" & reminderCount
end tell`, Sanitize(name))
}
