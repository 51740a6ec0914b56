package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nxhuman/nxhuman/internal/content"
	"github.com/nxhuman/nxhuman/internal/logbook"
)

// --- Rules tool ---

// RulesInput is the input for the rules tool (no parameters needed).
type RulesInput struct{}

// RulesOutput is the output for the rules tool.
type RulesOutput struct {
	Project string `json:"project" jsonschema:"project name (directory base name)"`
	Source  string `json:"source"  jsonschema:"where the content came from: file or generated"`
	Content string `json:"content" jsonschema:"full rules document text"`
}

func handleRules(dir string) mcp.ToolHandlerFor[RulesInput, RulesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ RulesInput) (*mcp.CallToolResult, RulesOutput, error) {
		project := filepath.Base(dir)

		data, err := os.ReadFile(filepath.Join(dir, content.RulesFile))
		if err == nil {
			return nil, RulesOutput{Project: project, Source: "file", Content: string(data)}, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, RulesOutput{}, fmt.Errorf("reading %s: %w", content.RulesFile, err)
		}

		body, err := content.Rules(content.Params{Project: project, Now: time.Now()})
		if err != nil {
			return nil, RulesOutput{}, fmt.Errorf("generating rules: %w", err)
		}
		return nil, RulesOutput{Project: project, Source: "generated", Content: body}, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Project     string `json:"project"      jsonschema:"project name (directory base name)"`
	RulesExists bool   `json:"rules_exists" jsonschema:"whether .rules is present"`
	LogExists   bool   `json:"log_exists"   jsonschema:"whether .nxlogs is present"`
	AliasExists bool   `json:"alias_exists" jsonschema:"whether .cursorrules is present"`
	Decisions   int    `json:"decisions"    jsonschema:"number of entries in the decision log"`
}

func handleStatus(dir string) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		log := logbook.New(filepath.Join(dir, content.LogFile))
		decisions, err := log.Count()
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("counting decisions: %w", err)
		}

		out := StatusOutput{
			Project:     filepath.Base(dir),
			RulesExists: fileExists(filepath.Join(dir, content.RulesFile)),
			LogExists:   log.Exists(),
			AliasExists: lstatExists(filepath.Join(dir, content.AliasFile)),
			Decisions:   decisions,
		}
		return nil, out, nil
	}
}

// --- Log decision tool ---

// LogDecisionInput is the input for the log_decision tool.
type LogDecisionInput struct {
	Text string `json:"text"           jsonschema:"the decision text to record"`
	Kind string `json:"kind,omitempty" jsonschema:"entry kind label (default DECISION)"`
}

// LogDecisionOutput is the output for the log_decision tool.
type LogDecisionOutput struct {
	Line string `json:"line" jsonschema:"the exact line appended to the log"`
	Path string `json:"path" jsonschema:"path of the log file"`
}

func handleLogDecision(dir string) mcp.ToolHandlerFor[LogDecisionInput, LogDecisionOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LogDecisionInput) (*mcp.CallToolResult, LogDecisionOutput, error) {
		if input.Text == "" {
			return nil, LogDecisionOutput{}, errors.New("text is required")
		}

		log := logbook.New(filepath.Join(dir, content.LogFile))
		entry := logbook.Entry{At: time.Now(), Kind: input.Kind, Text: input.Text}
		if err := log.Append(entry); err != nil {
			return nil, LogDecisionOutput{}, fmt.Errorf("appending decision: %w", err)
		}

		return nil, LogDecisionOutput{Line: entry.Line(), Path: log.Path()}, nil
	}
}

// fileExists reports whether a regular file is present at path.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// lstatExists reports presence without following symlinks, so a dangling
// .cursorrules link still counts.
func lstatExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
