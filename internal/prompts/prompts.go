// Package prompts holds the fixed tone-rewriting instructions sent to the
// upstream model, with optional overrides from a YAML file.
package prompts

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	ToneFormal = "formal"
	ToneCasual = "casual"
)

const formalInstruction = "You are a writing assistant. Rewrite the user's text in a formal, professional tone. " +
	"Preserve the meaning and all factual content exactly — names, dates, numbers, email addresses, phone numbers " +
	"and other contact details must appear verbatim in the output. " +
	"If the text contains a question, do not answer it; only rewrite it. " +
	"Return only the rewritten text with no commentary, preamble, or quotation marks."

const casualInstruction = "You are a writing assistant. Rewrite the user's text in a relaxed, casual, friendly tone. " +
	"Preserve the meaning and all factual content exactly — names, dates, numbers, email addresses, phone numbers " +
	"and other contact details must appear verbatim in the output. " +
	"If the text contains a question, do not answer it; only rewrite it. " +
	"Return only the rewritten text with no commentary, preamble, or quotation marks."

type fileConfig struct {
	Tones map[string]string `yaml:"tones"`
}

var (
	mu           sync.RWMutex
	instructions = map[string]string{
		ToneFormal: formalInstruction,
		ToneCasual: casualInstruction,
	}
)

// LoadOverrides merges tone instructions from a YAML file of the form:
//
//	tones:
//	  formal: "..."
//	  casual: "..."
//
// Unknown tone keys are rejected; an empty path is a no-op.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tones file: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse tones file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for tone, text := range cfg.Tones {
		tone = strings.ToLower(strings.TrimSpace(tone))
		if _, ok := instructions[tone]; !ok {
			return fmt.Errorf("unknown tone %q in tones file", tone)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("empty instruction for tone %q in tones file", tone)
		}
		instructions[tone] = text
	}
	return nil
}

// IsValidTone reports whether tone is one of the supported registers.
func IsValidTone(tone string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := instructions[tone]
	return ok
}

// Instruction returns the system instruction for tone. The tone must be
// valid; callers validate first.
func Instruction(tone string) string {
	mu.RLock()
	defer mu.RUnlock()
	return instructions[tone]
}

// ResetForTest restores the built-in instructions so tests can force a
// clean state after loading overrides.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	instructions = map[string]string{
		ToneFormal: formalInstruction,
		ToneCasual: casualInstruction,
	}
}
