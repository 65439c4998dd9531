package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jagadeesh52423/remainders-mcp/internal/applescript"
	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

func (s *Server) registerReminderTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("get_reminders",
			mcp.WithDescription("Get reminders with optional filtering by list, completion status, priority, date range, or search text."),
			mcp.WithString("listName", mcp.Description("Filter by list name. If omitted, searches all lists.")),
			mcp.WithBoolean("completed", mcp.Description("Filter by completion status. true=completed, false=incomplete, omit for all.")),
			mcp.WithString("priority", mcp.Description("Filter by priority level"), mcp.Enum("none", "low", "medium", "high")),
			mcp.WithString("dueBefore", mcp.Description("Filter reminders due before this date (ISO 8601 format)")),
			mcp.WithString("dueAfter", mcp.Description("Filter reminders due after this date (ISO 8601 format)")),
			mcp.WithString("searchText", mcp.Description("Search in reminder name and body")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of reminders to return (1-500, default 100)")),
		),
		s.handleGetReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_reminder",
			mcp.WithDescription("Get a single reminder by its ID."),
			mcp.WithString("id", mcp.Required(), mcp.Description("The unique identifier of the reminder")),
			mcp.WithString("listName", mcp.Required(), mcp.Description("The name of the list containing the reminder")),
		),
		s.handleGetReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("create_reminder",
			mcp.WithDescription("Create a new reminder in the specified list."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Title of the reminder")),
			mcp.WithString("listName", mcp.Required(), mcp.Description("Name of the list to add the reminder to")),
			mcp.WithString("body", mcp.Description("Notes/description for the reminder")),
			mcp.WithString("dueDate", mcp.Description("Due date with time (ISO 8601 format, e.g., '2025-01-15T14:00:00')")),
			mcp.WithString("allDayDueDate", mcp.Description("All-day due date without time (ISO 8601 date, e.g., '2025-01-15')")),
			mcp.WithString("remindMeDate", mcp.Description("When to show alert notification (ISO 8601 format)")),
			mcp.WithString("priority", mcp.Description("Priority level (default: none)"), mcp.Enum("none", "low", "medium", "high")),
		),
		s.handleCreateReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("update_reminder",
			mcp.WithDescription("Update an existing reminder's properties. Only specified fields will be changed."),
			mcp.WithString("id", mcp.Required(), mcp.Description("The unique identifier of the reminder to update")),
			mcp.WithString("listName", mcp.Required(), mcp.Description("The name of the list containing the reminder")),
			mcp.WithString("name", mcp.Description("New title for the reminder")),
			mcp.WithString("body", mcp.Description("New notes/description. Set to null to clear.")),
			mcp.WithString("dueDate", mcp.Description("New due date with time. Set to null to clear.")),
			mcp.WithString("allDayDueDate", mcp.Description("New all-day due date. Set to null to clear.")),
			mcp.WithString("remindMeDate", mcp.Description("New alert date. Set to null to clear.")),
			mcp.WithString("priority", mcp.Description("New priority level"), mcp.Enum("none", "low", "medium", "high")),
			mcp.WithBoolean("completed", mcp.Description("Set completion status")),
		),
		s.handleUpdateReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("delete_reminder",
			mcp.WithDescription("Delete a reminder. This action cannot be undone."),
			mcp.WithString("id", mcp.Required(), mcp.Description("The unique identifier of the reminder to delete")),
			mcp.WithString("listName", mcp.Required(), mcp.Description("The name of the list containing the reminder")),
		),
		s.handleDeleteReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("complete_reminder",
			mcp.WithDescription("Mark a reminder as completed or incomplete."),
			mcp.WithString("id", mcp.Required(), mcp.Description("The unique identifier of the reminder")),
			mcp.WithString("listName", mcp.Required(), mcp.Description("The name of the list containing the reminder")),
			mcp.WithBoolean("completed", mcp.Description("true to mark complete, false to mark incomplete (default: true)")),
		),
		s.handleCompleteReminder,
	)
}

func (s *Server) handleGetReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := filterFromRequest(req)
	if err != nil {
		return errorResult(err), nil
	}
	listName := req.GetString("listName", "")

	// List discovery always runs first so a bad list name fails before any
	// reminder fetch.
	listsOutput, err := s.runner.Run(ctx, applescript.GetAllLists)
	if err != nil {
		return errorResult(err), nil
	}
	lists := applescript.ParseLists(listsOutput)

	targetLists := lists
	if listName != "" {
		targetLists = nil
		for _, l := range lists {
			if l.Name == listName {
				targetLists = append(targetLists, l)
			}
		}
		if len(targetLists) == 0 {
			return errorResult(reminders.NewNotFoundError("List", listName)), nil
		}
	}

	// One invocation per list, sequentially; concatenation order is list
	// order, then within-list external order.
	var all []reminders.Reminder
	for _, l := range targetLists {
		output, err := s.runner.Run(ctx, applescript.GetRemindersFromList(l.Name))
		if err != nil {
			return errorResult(err), nil
		}
		all = append(all, applescript.ParseReminders(output, l.Name)...)
	}

	limited := filter.Apply(all)
	return jsonResult(struct {
		Total     int                  `json:"total"`
		Reminders []reminders.Reminder `json:"reminders"`
	}{len(limited), limited}), nil
}

func filterFromRequest(req mcp.CallToolRequest) (reminders.Filter, error) {
	args := req.GetArguments()
	filter := reminders.Filter{
		SearchText: req.GetString("searchText", ""),
		Limit:      reminders.DefaultLimit,
	}

	if v, ok := args["completed"].(bool); ok {
		filter.Completed = &v
	}
	if name := req.GetString("priority", ""); name != "" {
		p, err := reminders.ParsePriority(name)
		if err != nil {
			return reminders.Filter{}, err
		}
		filter.Priority = &p
	}
	if iso := req.GetString("dueBefore", ""); iso != "" {
		t, err := applescript.ParseISO(iso)
		if err != nil {
			return reminders.Filter{}, err
		}
		filter.DueBefore = &t
	}
	if iso := req.GetString("dueAfter", ""); iso != "" {
		t, err := applescript.ParseISO(iso)
		if err != nil {
			return reminders.Filter{}, err
		}
		filter.DueAfter = &t
	}
	if _, ok := args["limit"]; ok {
		limit := int(req.GetFloat("limit", reminders.DefaultLimit))
		if limit < 1 || limit > reminders.MaxLimit {
			return reminders.Filter{}, reminders.NewValidationError(
				fmt.Sprintf("limit must be between 1 and %d", reminders.MaxLimit))
		}
		filter.Limit = limit
	}
	return filter, nil
}

func (s *Server) handleGetReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	listName := req.GetString("listName", "")
	if err := requireRef(id, listName); err != nil {
		return errorResult(err), nil
	}

	output, err := s.runner.Run(ctx, applescript.GetReminderByID(listName, id))
	if err != nil {
		return errorResult(err), nil
	}

	reminder := applescript.ParseReminder(output, listName)
	if reminder == nil {
		return errorResult(reminders.NewNotFoundError("Reminder", id)), nil
	}

	return jsonResult(struct {
		Reminder *reminders.Reminder `json:"reminder"`
	}{reminder}), nil
}

func (s *Server) handleCreateReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := reminders.CreateReminderInput{
		Name:          req.GetString("name", ""),
		ListName:      req.GetString("listName", ""),
		Body:          req.GetString("body", ""),
		DueDate:       req.GetString("dueDate", ""),
		AllDayDueDate: req.GetString("allDayDueDate", ""),
		RemindMeDate:  req.GetString("remindMeDate", ""),
		Priority:      req.GetString("priority", "none"),
	}

	id, err := s.createReminder(ctx, in)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(reminders.OperationResult{
		Success: true,
		Message: fmt.Sprintf("Reminder %q created successfully", in.Name),
		ID:      id,
	}), nil
}

// createReminder is the shared create path for the single and batch tools.
// It returns the id assigned by the Reminders app.
func (s *Server) createReminder(ctx context.Context, in reminders.CreateReminderInput) (string, error) {
	if err := validateName(in.Name, "Reminder name"); err != nil {
		return "", err
	}
	if in.ListName == "" {
		return "", reminders.NewValidationError("List name is required")
	}
	if len(in.Body) > maxBodyLen {
		return "", reminders.NewValidationError(fmt.Sprintf("Body too long (max %d characters)", maxBodyLen))
	}

	script, err := applescript.CreateReminder(in)
	if err != nil {
		return "", err
	}
	return s.runner.Run(ctx, script)
}

func (s *Server) handleUpdateReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in reminders.UpdateReminderInput
	if err := req.BindArguments(&in); err != nil {
		return errorResult(reminders.NewValidationError(err.Error())), nil
	}
	if err := s.updateReminder(ctx, in); err != nil {
		return errorResult(err), nil
	}

	return jsonResult(reminders.OperationResult{
		Success: true,
		Message: "Reminder updated successfully",
	}), nil
}

// updateReminder is the shared update path for the single and batch tools.
func (s *Server) updateReminder(ctx context.Context, in reminders.UpdateReminderInput) error {
	if err := validateUpdate(in); err != nil {
		return err
	}
	script, err := applescript.UpdateReminder(in)
	if err != nil {
		return err
	}
	_, err = s.runner.Run(ctx, script)
	return err
}

func validateUpdate(in reminders.UpdateReminderInput) error {
	if err := requireRef(in.ID, in.ListName); err != nil {
		return err
	}
	if in.Name != nil {
		if err := validateName(*in.Name, "Reminder name"); err != nil {
			return err
		}
	}
	if in.Body.Set && in.Body.Valid && len(in.Body.Value) > maxBodyLen {
		return reminders.NewValidationError(fmt.Sprintf("Body too long (max %d characters)", maxBodyLen))
	}
	return nil
}

func (s *Server) handleDeleteReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	listName := req.GetString("listName", "")
	if err := requireRef(id, listName); err != nil {
		return errorResult(err), nil
	}

	if _, err := s.runner.Run(ctx, applescript.DeleteReminder(listName, id)); err != nil {
		return errorResult(err), nil
	}

	return jsonResult(reminders.OperationResult{
		Success: true,
		Message: "Reminder deleted successfully",
	}), nil
}

func (s *Server) handleCompleteReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	listName := req.GetString("listName", "")
	if err := requireRef(id, listName); err != nil {
		return errorResult(err), nil
	}

	completed := true
	if v, ok := req.GetArguments()["completed"].(bool); ok {
		completed = v
	}

	if _, err := s.runner.Run(ctx, applescript.CompleteReminder(listName, id, completed)); err != nil {
		return errorResult(err), nil
	}

	return jsonResult(reminders.OperationResult{
		Success: true,
		Message: fmt.Sprintf("Reminder marked as %s", completedWord(completed)),
	}), nil
}

func requireRef(id, listName string) error {
	if id == "" {
		return reminders.NewValidationError("Reminder id is required")
	}
	if listName == "" {
		return reminders.NewValidationError("List name is required")
	}
	return nil
}

func completedWord(completed bool) string {
	if completed {
		return "completed"
	}
	return "incomplete"
}
