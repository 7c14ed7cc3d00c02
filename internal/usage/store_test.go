package usage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStore_MissingFileStartsAtZero(t *testing.T) {
	p := NewFilePersistence(filepath.Join(t.TempDir(), "usage.json"))
	s := NewStore(p)
	if got := s.Read(); got != 0 {
		t.Fatalf("expected 0 for missing file, got %d", got)
	}
}

func TestNewStore_CorruptFileStartsAtZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	s := NewStore(NewFilePersistence(path))
	if got := s.Read(); got != 0 {
		t.Fatalf("expected 0 for corrupt file, got %d", got)
	}
}

func TestIncrement_PersistsAndSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")

	s := NewStore(NewFilePersistence(path))
	for i := 0; i < 5; i++ {
		s.Increment()
	}
	if got := s.Read(); got != 5 {
		t.Fatalf("expected 5 after five increments, got %d", got)
	}

	// Simulate process restart: a fresh store must load the flushed total.
	restarted := NewStore(NewFilePersistence(path))
	if got := restarted.Read(); got != 5 {
		t.Fatalf("expected 5 after restart, got %d", got)
	}
}

func TestIncrement_SaveFailureDoesNotFailCaller(t *testing.T) {
	mem := &MemoryPersistence{SaveErr: ErrSaveFailed}
	s := NewStore(mem)

	if got := s.Increment(); got != 1 {
		t.Fatalf("expected in-memory counter to advance despite save failure, got %d", got)
	}
	if got := s.Read(); got != 1 {
		t.Fatalf("expected Read of 1, got %d", got)
	}
	if mem.SaveHits != 1 {
		t.Fatalf("expected one save attempt, got %d", mem.SaveHits)
	}
}

func TestFilePersistence_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	p := NewFilePersistence(path)

	if err := p.Save(42); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(data) != `{"totalCalls":42}` {
		t.Fatalf("unexpected file contents: %s", data)
	}
}
