package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jagadeesh52423/remainders-mcp/internal/applescript"
	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

func (s *Server) registerListTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list_reminder_lists",
			mcp.WithDescription("Get all reminder lists from macOS Reminders app. Returns list names, IDs, and reminder counts."),
		),
		s.handleListLists,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("create_reminder_list",
			mcp.WithDescription("Create a new reminder list in macOS Reminders app."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name for the new list")),
		),
		s.handleCreateList,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("delete_reminder_list",
			mcp.WithDescription("Delete a reminder list and all its reminders. This action cannot be undone."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the list to delete")),
		),
		s.handleDeleteList,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("rename_reminder_list",
			mcp.WithDescription("Rename an existing reminder list."),
			mcp.WithString("currentName", mcp.Required(), mcp.Description("Current name of the list")),
			mcp.WithString("newName", mcp.Required(), mcp.Description("New name for the list")),
		),
		s.handleRenameList,
	)
}

func (s *Server) handleListLists(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, err := s.runner.Run(ctx, applescript.GetAllLists)
	if err != nil {
		return errorResult(err), nil
	}

	lists := applescript.ParseLists(output)
	return jsonResult(struct {
		Lists []reminders.ReminderList `json:"lists"`
	}{lists}), nil
}

func (s *Server) handleCreateList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if err := validateName(name, "List name"); err != nil {
		return errorResult(err), nil
	}

	id, err := s.runner.Run(ctx, applescript.CreateList(name))
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(reminders.OperationResult{
		Success: true,
		Message: fmt.Sprintf("List %q created successfully", name),
		ID:      id,
	}), nil
}

func (s *Server) handleDeleteList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return errorResult(reminders.NewValidationError("List name is required")), nil
	}

	if _, err := s.runner.Run(ctx, applescript.DeleteList(name)); err != nil {
		return errorResult(err), nil
	}

	return jsonResult(reminders.OperationResult{
		Success: true,
		Message: fmt.Sprintf("List %q deleted successfully", name),
	}), nil
}

func (s *Server) handleRenameList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	currentName := req.GetString("currentName", "")
	newName := req.GetString("newName", "")
	if currentName == "" {
		return errorResult(reminders.NewValidationError("Current name is required")), nil
	}
	if err := validateName(newName, "New name"); err != nil {
		return errorResult(err), nil
	}

	if _, err := s.runner.Run(ctx, applescript.RenameList(currentName, newName)); err != nil {
		return errorResult(err), nil
	}

	return jsonResult(reminders.OperationResult{
		Success: true,
		Message: fmt.Sprintf("List renamed from %q to %q", currentName, newName),
	}), nil
}

func validateName(name, label string) error {
	if name == "" {
		return reminders.NewValidationError(fmt.Sprintf("%s is required", label))
	}
	if len(name) > maxNameLen {
		return reminders.NewValidationError(fmt.Sprintf("%s too long (max %d characters)", label, maxNameLen))
	}
	return nil
}
