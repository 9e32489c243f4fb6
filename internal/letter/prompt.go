package letter

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"civicletter/internal/types"
)

const defaultSystemPrompt = `You are a professional letter writer helping constituents contact their elected officials.
Write a formal, respectful letter that is clear and persuasive.
Follow proper modern email formatting and etiquette.
Use facts and data to support the constituent's position.
Keep the tone respectful but firm.
Focus on a specific ask or action the representative can take.
If available, incorporate any biographical details that establish the writer's credibility on this issue.
Do not include citations or references unless the user specifically requests them.`

// Style tunes the completion request. Letters should read as consistent and
// factual, so the defaults keep randomness low.
type Style struct {
	Temperature      float32 `yaml:"temperature"`
	MaxTokens        int     `yaml:"max_tokens"`
	TopP             float32 `yaml:"top_p"`
	FrequencyPenalty float32 `yaml:"frequency_penalty"`
	PresencePenalty  float32 `yaml:"presence_penalty"`
	RecencyFilter    string  `yaml:"recency_filter"`
}

// PromptSpec holds the system instructions and style parameters for letter
// generation. The user prompt layout is fixed in code.
type PromptSpec struct {
	System string `yaml:"system"`
	Style  Style  `yaml:"style"`
}

func DefaultPromptSpec() PromptSpec {
	return PromptSpec{
		System: defaultSystemPrompt,
		Style: Style{
			Temperature:      0.3,
			MaxTokens:        1500,
			TopP:             0.9,
			FrequencyPenalty: 1,
			PresencePenalty:  0,
			RecencyFilter:    "month",
		},
	}
}

// LoadPromptSpec reads a yaml prompt spec from path. A missing file yields
// the compiled-in defaults; an unreadable or invalid file is an error.
// Zero-valued style fields are filled from the defaults.
func LoadPromptSpec(path string) (PromptSpec, error) {
	def := DefaultPromptSpec()
	if path == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return def, nil
		}
		return PromptSpec{}, err
	}
	var spec PromptSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return PromptSpec{}, err
	}
	if strings.TrimSpace(spec.System) == "" {
		spec.System = def.System
	}
	if spec.Style.Temperature <= 0 {
		spec.Style.Temperature = def.Style.Temperature
	}
	if spec.Style.MaxTokens <= 0 {
		spec.Style.MaxTokens = def.Style.MaxTokens
	}
	if spec.Style.TopP <= 0 {
		spec.Style.TopP = def.Style.TopP
	}
	return spec, nil
}

// BuildPrompts derives the system/user prompt pair from the form input. The
// user prompt carries each field verbatim under a fixed label, in a fixed
// order.
func BuildPrompts(spec PromptSpec, form types.SimpleFormData) (system, user string) {
	var b strings.Builder
	b.WriteString("Write a professional letter to a representative using the following information:\n")
	b.WriteString("\nAbout me:\n")
	b.WriteString(form.UserInfo)
	b.WriteString("\n\nRepresentative information:\n")
	b.WriteString(form.RepresentativeInfo)
	b.WriteString("\n\nIssue details:\n")
	b.WriteString(form.IssueDetails)
	b.WriteString("\n\nCustom instructions:\n")
	b.WriteString(form.CustomInstructions)
	b.WriteString("\n\nPlease research current information about this issue/legislation and incorporate accurate, up-to-date content in the letter.\n")
	return spec.System, b.String()
}
