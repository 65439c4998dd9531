// Command mcp-reminders provides an MCP server for the macOS Reminders app.
//
// The server translates tool calls into AppleScript programs executed via
// osascript; all reminder state stays in the Reminders app itself.
//
// Usage:
//
//	./mcp-reminders          # Start MCP server (stdio)
//	./mcp-reminders --help   # Show help
//
// Environment:
//
//	MCP_REMINDERS_CONFIG          Path to YAML config (default: ~/.mcp-reminders/config.yaml)
//	MCP_REMINDERS_SCRIPT_TIMEOUT  Seconds per AppleScript invocation (default: 30)
//	MCP_REMINDERS_LOG_LEVEL       Logging level on stderr (default: info)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/jagadeesh52423/remainders-mcp/internal/applescript"
	"github.com/jagadeesh52423/remainders-mcp/internal/config"
	"github.com/jagadeesh52423/remainders-mcp/internal/tools"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		}
	}

	configPath := os.Getenv("MCP_REMINDERS_CONFIG")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP stdio protocol; all diagnostics go to stderr.
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(cfg.LogLevel())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "mcp-reminders")

	executor := applescript.NewExecutor(cfg.ScriptTimeout(), cfg.ProbeTimeout(), log)

	if !executor.CheckAccess(context.Background()) {
		log.Warn("Reminders permission may not be granted. Please grant permission in System Settings > Privacy & Security > Automation when prompted.")
	}

	s := tools.NewServer(executor, log)

	log.Info("Reminders MCP server running on stdio")
	if err := server.ServeStdio(s.MCPServer()); err != nil {
		log.Errorf("Server error: %v", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`MCP Reminders Server - macOS Reminders via the MCP protocol

USAGE:
    mcp-reminders          Start MCP server (communicates via stdio)
    mcp-reminders --help   Show this help

ENVIRONMENT:
    MCP_REMINDERS_CONFIG          Path to YAML config file
                                  Default: ~/.mcp-reminders/config.yaml
    MCP_REMINDERS_SCRIPT_TIMEOUT  Seconds per AppleScript invocation (default: 30)
    MCP_REMINDERS_LOG_LEVEL       Logging level on stderr (default: info)

TOOLS:
    list_reminder_lists       Get all reminder lists
    create_reminder_list      Create a new list
    delete_reminder_list      Delete a list and its reminders
    rename_reminder_list      Rename a list
    get_reminders             Query reminders with filters
    get_reminder              Get a single reminder by id
    create_reminder           Create a reminder
    update_reminder           Update reminder fields (null clears a field)
    delete_reminder           Delete a reminder
    complete_reminder         Mark a reminder completed or incomplete
    batch_create_reminders    Create up to 100 reminders
    batch_update_reminders    Update up to 100 reminders
    batch_complete_reminders  Complete up to 100 reminders

CONFIGURATION:
    Add to your MCP client config (e.g. mcp.json):
    {
      "mcpServers": {
        "reminders": {
          "command": "/path/to/mcp-reminders",
          "args": []
        }
      }
    }

    Requires macOS with automation consent for the Reminders app.`)
}
