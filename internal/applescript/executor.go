package applescript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

// Runner executes one AppleScript program and returns its trimmed stdout.
// Tool handlers depend on this interface; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

const (
	// DefaultTimeout bounds one osascript invocation.
	DefaultTimeout = 30 * time.Second
	// DefaultProbeTimeout bounds the startup permission probe.
	DefaultProbeTimeout = 5 * time.Second
)

const probeScript = `tell application "Reminders"
  count of lists
end tell`

// Executor runs scripts through the osascript interpreter, one child
// process per call. Process handle and output buffers are scoped to the
// call and released on every exit path.
type Executor struct {
	Timeout      time.Duration
	ProbeTimeout time.Duration

	log *logrus.Entry
}

// NewExecutor returns an Executor with the given script timeout.
// Non-positive durations fall back to the defaults.
func NewExecutor(timeout, probeTimeout time.Duration, log *logrus.Entry) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Executor{Timeout: timeout, ProbeTimeout: probeTimeout, log: log}
}

// Run executes the script, feeding it to osascript on stdin. Failures are
// classified into the typed taxonomy: deadline hits become TIMEOUT,
// consent refusals become PERMISSION_DENIED, everything else surfaces as
// APPLESCRIPT_ERROR with the interpreter's message passed through.
func (e *Executor) Run(ctx context.Context, script string) (string, error) {
	return e.run(ctx, script, e.Timeout)
}

func (e *Executor) run(ctx context.Context, script string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-")
	cmd.Stdin = strings.NewReader(script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.log.WithField("script_bytes", len(script)).Debug("running osascript")

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", reminders.NewTimeoutError(fmt.Sprintf("AppleScript execution timed out after %s", timeout))
	}
	if err != nil {
		return "", classify(err, stderr.String())
	}

	out := strings.TrimSpace(stdout.String())
	// osascript is known to emit benign diagnostics on stderr alongside a
	// zero exit; that only counts as failure when stdout is empty and the
	// text flags an error.
	if out == "" {
		if msg := strings.TrimSpace(stderr.String()); msg != "" && strings.Contains(msg, "error") {
			return "", reminders.NewAppleScriptError(msg)
		}
	}
	return out, nil
}

func classify(err error, stderr string) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = err.Error()
	}
	if isPermissionFailure(msg) {
		return reminders.NewPermissionError("Reminders access denied. Please grant permission in System Settings > Privacy & Security > Automation")
	}
	return reminders.NewAppleScriptError(msg)
}

// AppleScript reports missing automation consent either in prose or as
// error code -1743.
func isPermissionFailure(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "not allowed") ||
		strings.Contains(lower, "permission") ||
		strings.Contains(msg, "(-1743)")
}

// CheckAccess issues a trivial read-only probe and reports false only when
// the failure is specifically a consent refusal. Any other failure,
// including timeout, reports true: ambiguous startup errors must not block
// the server.
func (e *Executor) CheckAccess(ctx context.Context) bool {
	_, err := e.run(ctx, probeScript, e.ProbeTimeout)
	var typed *reminders.Error
	if errors.As(err, &typed) && typed.Code == reminders.CodePermission {
		return false
	}
	return true
}
