package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/scholarly"
	"github.com/fwojciec/scholarly/analyze"
	"github.com/fwojciec/scholarly/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Analyses scholarly.AnalysisService
	Analyzer *analyze.Analyzer
	Exporter scholarly.Exporter
	Composer scholarly.EmailComposer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log operations to stderr"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze one or more profile pages"`
	Email   EmailCmd   `cmd:"" help:"Personalise an email template with a profile summary"`
	History HistoryCmd `cmd:"" help:"List stored analyses"`
	Show    ShowCmd    `cmd:"" help:"Show a stored analysis"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored analysis"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs         []string      `arg:"" name:"url" help:"Profile URL (repeatable)"`
	Fields       []string      `short:"f" name:"field" help:"Field to include: name, affiliation, summary, interests, metrics, publications (repeatable, default all)"`
	Top          int           `default:"5" help:"Number of most-cited publications to list"`
	Format       string        `enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)"`
	Export       string        `type:"path" help:"Directory to export summaries to"`
	ExportFormat string        `enum:"txt,pdf" default:"txt" help:"Export file format (txt, pdf)"`
	Browser      bool          `short:"b" help:"Render pages with a headless browser"`
	Timeout      time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency  int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	NoSave       bool          `help:"Do not store the analysis in history"`
}

// EmailCmd is the "email" subcommand.
type EmailCmd struct {
	Target    string        `arg:"" help:"Stored analysis ID or profile URL"`
	Template  string        `short:"T" required:"" help:"Email template file, or - to read stdin"`
	Comments  string        `help:"Additional instructions for the email"`
	Provider  string        `enum:"gemini,openai" default:"gemini" help:"Text generation provider (gemini, openai)"`
	Model     string        `help:"Model name (provider default if empty)"`
	MaxTokens int           `help:"Reject prompts longer than this many tokens (gemini only)"`
	Browser   bool          `short:"b" help:"Render pages with a headless browser"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`

	GeminiAPIKey  string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	OpenAIAPIKey  string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show analyses of this profile URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of analyses to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Analysis ID"`
	Format string `enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}
