package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

func TestHandleListLists(t *testing.T) {
	runner := &stubRunner{output: "list-1|||Groceries|||3\nlist-2|||Work|||0"}
	s := newTestServer(runner)

	res, err := s.handleListLists(context.Background(), request(nil))
	if err != nil {
		t.Fatal(err)
	}
	var payload struct {
		Lists []reminders.ReminderList `json:"lists"`
	}
	decodeResult(t, res, &payload)

	if len(payload.Lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(payload.Lists))
	}
	if payload.Lists[0].Name != "Groceries" || payload.Lists[0].ReminderCount != 3 {
		t.Errorf("unexpected first list: %+v", payload.Lists[0])
	}
}

func TestHandleListLists_EmptyAccount(t *testing.T) {
	s := newTestServer(&stubRunner{output: ""})

	res, err := s.handleListLists(context.Background(), request(nil))
	if err != nil {
		t.Fatal(err)
	}
	// An account with no lists reports an empty array, not null.
	if !strings.Contains(resultText(t, res), `"lists": []`) {
		t.Errorf("expected empty array, got: %s", resultText(t, res))
	}
}

func TestHandleCreateList(t *testing.T) {
	runner := &stubRunner{output: "new-list-id"}
	s := newTestServer(runner)

	res, err := s.handleCreateList(context.Background(), request(map[string]any{"name": "Projects"}))
	if err != nil {
		t.Fatal(err)
	}
	var result reminders.OperationResult
	decodeResult(t, res, &result)

	if !result.Success || result.ID != "new-list-id" {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.Message != `List "Projects" created successfully` {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestHandleCreateList_MissingName(t *testing.T) {
	runner := &stubRunner{}
	s := newTestServer(runner)

	res, err := s.handleCreateList(context.Background(), request(nil))
	if err != nil {
		t.Fatal(err)
	}
	env := errorEnvelope(t, res)
	if env.Code != reminders.CodeValidation {
		t.Errorf("code = %s, want VALIDATION_ERROR", env.Code)
	}
	if len(runner.calls) != 0 {
		t.Errorf("validation failure must not run a script, ran %d", len(runner.calls))
	}
}

func TestHandleCreateList_NameTooLong(t *testing.T) {
	s := newTestServer(&stubRunner{})
	name := strings.Repeat("x", maxNameLen+1)

	res, err := s.handleCreateList(context.Background(), request(map[string]any{"name": name}))
	if err != nil {
		t.Fatal(err)
	}
	if env := errorEnvelope(t, res); env.Code != reminders.CodeValidation {
		t.Errorf("code = %s, want VALIDATION_ERROR", env.Code)
	}
}

func TestHandleDeleteList(t *testing.T) {
	runner := &stubRunner{output: "success"}
	s := newTestServer(runner)

	res, err := s.handleDeleteList(context.Background(), request(map[string]any{"name": "Old"}))
	if err != nil {
		t.Fatal(err)
	}
	var result reminders.OperationResult
	decodeResult(t, res, &result)
	if !result.Success || result.Message != `List "Old" deleted successfully` {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestHandleRenameList(t *testing.T) {
	runner := &stubRunner{output: "success"}
	s := newTestServer(runner)

	res, err := s.handleRenameList(context.Background(), request(map[string]any{
		"currentName": "Old",
		"newName":     "New",
	}))
	if err != nil {
		t.Fatal(err)
	}
	var result reminders.OperationResult
	decodeResult(t, res, &result)
	if !result.Success || result.Message != `List renamed from "Old" to "New"` {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(runner.calls) != 1 || !strings.Contains(runner.calls[0], `set name of list "Old" to "New"`) {
		t.Errorf("unexpected script calls: %v", runner.calls)
	}
}

func TestHandleRenameList_MissingNewName(t *testing.T) {
	s := newTestServer(&stubRunner{})

	res, err := s.handleRenameList(context.Background(), request(map[string]any{"currentName": "Old"}))
	if err != nil {
		t.Fatal(err)
	}
	if env := errorEnvelope(t, res); env.Code != reminders.CodeValidation {
		t.Errorf("code = %s, want VALIDATION_ERROR", env.Code)
	}
}

func TestScriptFailureSurfacesEnvelope(t *testing.T) {
	runner := &stubRunner{fn: func(string) (string, error) {
		return "", reminders.NewAppleScriptError(`Can't get list "Nope"`)
	}}
	s := newTestServer(runner)

	res, err := s.handleDeleteList(context.Background(), request(map[string]any{"name": "Nope"}))
	if err != nil {
		t.Fatal(err)
	}
	env := errorEnvelope(t, res)
	if env.Code != reminders.CodeAppleScript || !env.Recoverable {
		t.Errorf("unexpected envelope: %+v", env)
	}
}
