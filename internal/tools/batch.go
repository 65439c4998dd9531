package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jagadeesh52423/remainders-mcp/internal/applescript"
	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

func (s *Server) registerBatchTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("batch_create_reminders",
			mcp.WithDescription("Create multiple reminders at once. More efficient than creating one at a time."),
			mcp.WithArray("reminders", mcp.Required(), mcp.Description("Array of reminders to create (max 100)")),
		),
		s.handleBatchCreate,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("batch_update_reminders",
			mcp.WithDescription("Update multiple reminders at once. More efficient than updating one at a time."),
			mcp.WithArray("reminders", mcp.Required(), mcp.Description("Array of reminder updates (max 100)")),
		),
		s.handleBatchUpdate,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("batch_complete_reminders",
			mcp.WithDescription("Mark multiple reminders as completed or incomplete at once."),
			mcp.WithArray("reminders", mcp.Required(), mcp.Description("Array of {id, listName} reminder references (max 100)")),
			mcp.WithBoolean("completed", mcp.Description("true to mark complete, false to mark incomplete (default: true)")),
		),
		s.handleBatchComplete,
	)
}

func validateBatchSize(n int) error {
	if n < 1 {
		return reminders.NewValidationError("At least one reminder required")
	}
	if n > maxBatchLen {
		return reminders.NewValidationError(fmt.Sprintf("Maximum %d reminders per batch", maxBatchLen))
	}
	return nil
}

// batchResult aggregates per-item outcomes. The transport error flag is
// set only when every item failed; partial success is a non-error at the
// transport level and callers must inspect results[].
func batchResult(results []reminders.OperationResult) *mcp.CallToolResult {
	succeeded, failed := 0, 0
	for _, r := range results {
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}

	res := jsonResult(reminders.BatchResult{
		Success:        failed == 0,
		TotalProcessed: len(results),
		Succeeded:      succeeded,
		Failed:         failed,
		Results:        results,
	})
	res.IsError = failed > 0 && succeeded == 0
	return res
}

func (s *Server) handleBatchCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Reminders []reminders.CreateReminderInput `json:"reminders"`
	}
	if err := req.BindArguments(&args); err != nil {
		return errorResult(reminders.NewValidationError(err.Error())), nil
	}
	if err := validateBatchSize(len(args.Reminders)); err != nil {
		return errorResult(err), nil
	}

	// Items run sequentially, each isolated: one failure never aborts the
	// batch.
	results := make([]reminders.OperationResult, 0, len(args.Reminders))
	for _, in := range args.Reminders {
		id, err := s.createReminder(ctx, in)
		if err != nil {
			results = append(results, reminders.OperationResult{
				Success: false,
				Message: fmt.Sprintf("Failed to create %q: %s", in.Name, reminders.FormatError(err).Message),
			})
			continue
		}
		results = append(results, reminders.OperationResult{
			Success: true,
			Message: fmt.Sprintf("Created %q", in.Name),
			ID:      id,
		})
	}

	return batchResult(results), nil
}

func (s *Server) handleBatchUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Reminders []reminders.UpdateReminderInput `json:"reminders"`
	}
	if err := req.BindArguments(&args); err != nil {
		return errorResult(reminders.NewValidationError(err.Error())), nil
	}
	if err := validateBatchSize(len(args.Reminders)); err != nil {
		return errorResult(err), nil
	}

	results := make([]reminders.OperationResult, 0, len(args.Reminders))
	for _, in := range args.Reminders {
		if err := s.updateReminder(ctx, in); err != nil {
			results = append(results, reminders.OperationResult{
				Success: false,
				Message: fmt.Sprintf("Failed to update reminder %s: %s", in.ID, reminders.FormatError(err).Message),
			})
			continue
		}
		results = append(results, reminders.OperationResult{
			Success: true,
			Message: fmt.Sprintf("Updated reminder %s", in.ID),
			ID:      in.ID,
		})
	}

	return batchResult(results), nil
}

func (s *Server) handleBatchComplete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Reminders []reminders.ReminderRef `json:"reminders"`
		Completed *bool                   `json:"completed"`
	}
	if err := req.BindArguments(&args); err != nil {
		return errorResult(reminders.NewValidationError(err.Error())), nil
	}
	if err := validateBatchSize(len(args.Reminders)); err != nil {
		return errorResult(err), nil
	}

	completed := true
	if args.Completed != nil {
		completed = *args.Completed
	}

	results := make([]reminders.OperationResult, 0, len(args.Reminders))
	for _, ref := range args.Reminders {
		err := requireRef(ref.ID, ref.ListName)
		if err == nil {
			_, err = s.runner.Run(ctx, applescript.CompleteReminder(ref.ListName, ref.ID, completed))
		}
		if err != nil {
			results = append(results, reminders.OperationResult{
				Success: false,
				Message: fmt.Sprintf("Failed to update reminder %s: %s", ref.ID, reminders.FormatError(err).Message),
			})
			continue
		}
		results = append(results, reminders.OperationResult{
			Success: true,
			Message: fmt.Sprintf("Marked reminder %s as %s", ref.ID, completedWord(completed)),
			ID:      ref.ID,
		})
	}

	return batchResult(results), nil
}
