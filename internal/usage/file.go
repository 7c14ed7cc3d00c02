package usage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// counterState is the on-disk shape of the usage counter.
type counterState struct {
	TotalCalls int64 `json:"totalCalls"`
}

// FilePersistence stores the counter as a small JSON file, rewritten
// atomically on every save.
type FilePersistence struct {
	Path string
}

func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{Path: path}
}

// Load reads the persisted counter. A missing file is not an error and
// yields zero; a corrupt file is reported so the caller can log it.
func (f *FilePersistence) Load() (int64, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read usage file: %w", err)
	}
	var state counterState
	if err := json.Unmarshal(data, &state); err != nil {
		return 0, fmt.Errorf("parse usage file: %w", err)
	}
	return state.TotalCalls, nil
}

// Save writes the full counter state via a temp file and rename so a
// crash mid-write never leaves a truncated file behind.
func (f *FilePersistence) Save(total int64) error {
	data, err := json.Marshal(counterState{TotalCalls: total})
	if err != nil {
		return fmt.Errorf("encode usage state: %w", err)
	}

	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, "usage-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp usage file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := true
	defer func() {
		if cleanup {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp usage file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp usage file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp usage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp usage file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		return fmt.Errorf("rename temp usage file: %w", err)
	}
	cleanup = false
	return nil
}
