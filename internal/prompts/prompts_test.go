package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsValidTone(t *testing.T) {
	for _, tone := range []string{ToneFormal, ToneCasual} {
		if !IsValidTone(tone) {
			t.Fatalf("expected %q to be valid", tone)
		}
	}
	for _, tone := range []string{"", "FORMAL", "sarcastic", "formal "} {
		if IsValidTone(tone) {
			t.Fatalf("expected %q to be invalid", tone)
		}
	}
}

func TestInstruction_DefaultsCarryContract(t *testing.T) {
	for _, tone := range []string{ToneFormal, ToneCasual} {
		instr := Instruction(tone)
		if !strings.Contains(instr, "verbatim") {
			t.Fatalf("tone %q instruction must require factual content verbatim", tone)
		}
		if !strings.Contains(instr, "do not answer") {
			t.Fatalf("tone %q instruction must forbid answering questions", tone)
		}
		if !strings.Contains(instr, "no commentary") {
			t.Fatalf("tone %q instruction must forbid commentary", tone)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(ResetForTest)

	path := filepath.Join(t.TempDir(), "tones.yaml")
	cfg := "tones:\n  formal: \"Rewrite this very formally.\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write tones file: %v", err)
	}

	if err := LoadOverrides(path); err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if got := Instruction(ToneFormal); got != "Rewrite this very formally." {
		t.Fatalf("expected overridden formal instruction, got %q", got)
	}
	// Casual stays at the built-in default.
	if got := Instruction(ToneCasual); !strings.Contains(got, "casual") {
		t.Fatalf("expected default casual instruction to survive, got %q", got)
	}
}

func TestLoadOverrides_UnknownToneRejected(t *testing.T) {
	t.Cleanup(ResetForTest)

	path := filepath.Join(t.TempDir(), "tones.yaml")
	if err := os.WriteFile(path, []byte("tones:\n  pirate: \"Arr.\"\n"), 0o644); err != nil {
		t.Fatalf("write tones file: %v", err)
	}
	if err := LoadOverrides(path); err == nil {
		t.Fatal("expected error for unknown tone key")
	}
}

func TestLoadOverrides_EmptyPathIsNoop(t *testing.T) {
	if err := LoadOverrides(""); err != nil {
		t.Fatalf("expected no-op for empty path, got %v", err)
	}
}
