package genai

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v4"
)

//go:embed prompts.yaml
var promptsYAML []byte

type promptPair struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

// Prompts is the parsed prompt catalog.
type Prompts struct {
	CoverLetter    promptPair `yaml:"cover_letter"`
	InterviewGuide promptPair `yaml:"interview_guide"`
	ParseResume    promptPair `yaml:"parse_resume"`
	Avatar         promptPair `yaml:"avatar"`
	Chat           promptPair `yaml:"chat"`
}

// LoadPrompts parses a prompt catalog. An empty input loads the built-in one.
func LoadPrompts(data []byte) (*Prompts, error) {
	if len(data) == 0 {
		data = promptsYAML
	}
	var p Prompts
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing prompts: %w", err)
	}
	if p.CoverLetter.User == "" || p.InterviewGuide.User == "" || p.ParseResume.User == "" {
		return nil, fmt.Errorf("parsing prompts: missing required prompt")
	}
	return &p, nil
}

func render(name, tmpl string, data any) (string, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("prompt %s: %w", name, err)
	}
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("prompt %s: %w", name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}
