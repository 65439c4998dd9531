package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// stubRunner records every script and answers from fn, or with a fixed
// output when fn is nil.
type stubRunner struct {
	calls  []string
	output string
	fn     func(script string) (string, error)
}

func (s *stubRunner) Run(_ context.Context, script string) (string, error) {
	s.calls = append(s.calls, script)
	if s.fn != nil {
		return s.fn(script)
	}
	return s.output, nil
}

func newTestServer(runner *stubRunner) *Server {
	return NewServer(runner, nil)
}

func request(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func decodeResult(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(resultText(t, res)), v); err != nil {
		t.Fatalf("decoding result %q: %v", resultText(t, res), err)
	}
}

// errorEnvelope decodes the standard error payload and asserts the error
// flag on the transport result.
func errorEnvelope(t *testing.T, res *mcp.CallToolResult) struct {
	Error       bool   `json:"error"`
	Code        string `json:"code"`
	Message     string `json:"message"`
	Recoverable bool   `json:"recoverable"`
} {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected error result, got: %s", resultText(t, res))
	}
	var env struct {
		Error       bool   `json:"error"`
		Code        string `json:"code"`
		Message     string `json:"message"`
		Recoverable bool   `json:"recoverable"`
	}
	decodeResult(t, res, &env)
	if !env.Error {
		t.Fatalf("envelope missing error flag: %+v", env)
	}
	return env
}
