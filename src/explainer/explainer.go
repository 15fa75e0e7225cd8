package explainer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/eriklarko/truthtable/src/config"
)

// Request holds everything the explainer is told about one solved
// expression.
type Request struct {
	Expression string
	// Table is the rendered truth table, as shown to the user.
	Table    string
	Steps    []string
	Language string
}

type Explainer interface {
	Explain(ctx context.Context, request Request) (string, error)
}

type Config struct {
	APIKey   string        `env:"GOOGLE_API_KEY"`
	Model    string        `env:"EXPLAINER_MODEL" envDefault:"gemini-pro"`
	Endpoint string        `env:"EXPLAINER_ENDPOINT" envDefault:"https://generativelanguage.googleapis.com"`
	Timeout  time.Duration `env:"EXPLAINER_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads the explainer settings from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load explainer config: %w", err)
	}
	return cfg, nil
}

// New returns a Gemini explainer, or Noop when no API key is configured.
func New(cfg Config) Explainer {
	if cfg.APIKey == "" {
		slog.Debug("No API key configured, explanations are disabled")
		return Noop{}
	}
	return NewGeminiExplainer(cfg, nil)
}

// Noop never explains anything.
type Noop struct{}

func (Noop) Explain(context.Context, Request) (string, error) {
	return "", nil
}

// BuildPrompt asks for the four points a tutor would cover when going
// through a truth table with a student.
func BuildPrompt(request Request) string {
	language := request.Language
	if language == "" {
		language = "English"
	}

	var sb strings.Builder
	sb.WriteString("As a discrete mathematics expert, explain the following logical expression and its solution:\n\n")
	fmt.Fprintf(&sb, "Expression: %s\n\n", request.Expression)
	fmt.Fprintf(&sb, "Truth Table:\n%s\n\n", strings.TrimRight(request.Table, "\n"))
	sb.WriteString("Step-by-step evaluation:\n")
	for i, step := range request.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
	}
	sb.WriteString("\nPlease provide:\n")
	sb.WriteString("1. A brief explanation of what the expression means\n")
	sb.WriteString("2. How to read and interpret the truth table\n")
	sb.WriteString("3. An explanation of each step in the evaluation process\n")
	sb.WriteString("4. The final conclusion about when the expression is true/false\n\n")
	fmt.Fprintf(&sb, "Keep the explanation clear and concise. Do not use markdown and answer only in %s.", language)
	return sb.String()
}
