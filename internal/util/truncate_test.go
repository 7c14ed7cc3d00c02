package util

import (
	"errors"
	"strings"
	"testing"
)

func TestTruncateLog_ShortStringUnchanged(t *testing.T) {
	if got := TruncateLog("short", 10); got != "short" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}

func TestTruncateLog_LongStringTruncated(t *testing.T) {
	long := strings.Repeat("x", 2048)
	got := TruncateLog(long, 100)
	if !strings.HasPrefix(got, strings.Repeat("x", 100)) {
		t.Fatalf("expected truncated prefix, got %q", got[:120])
	}
	if !strings.Contains(got, "2048 bytes total") {
		t.Fatalf("expected total size marker, got %q", got)
	}
}

func TestTruncateError(t *testing.T) {
	if got := TruncateError(nil); got != "" {
		t.Fatalf("expected empty string for nil error, got %q", got)
	}
	if got := TruncateError(errors.New("boom")); got != "boom" {
		t.Fatalf("expected error text, got %q", got)
	}
}

func TestIsVerbose(t *testing.T) {
	t.Setenv("TONERELAY_VERBOSE", "")
	if IsVerbose() {
		t.Fatal("expected verbose off by default")
	}
	t.Setenv("TONERELAY_VERBOSE", "1")
	if !IsVerbose() {
		t.Fatal("expected verbose on for 1")
	}
}
