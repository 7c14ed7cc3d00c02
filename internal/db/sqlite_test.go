package db

import (
	"path/filepath"
	"testing"

	"github.com/softpen/tonerelay/internal/db/models"
)

func TestInitDB_MigratesFormatLog(t *testing.T) {
	database, err := InitDB(filepath.Join(t.TempDir(), "relay.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}

	entry := models.FormatLog{ID: "log-1", Timestamp: 1000, Method: "POST", URL: "/format", Status: 200, Tone: "formal", TextLength: 7}
	if err := database.Create(&entry).Error; err != nil {
		t.Fatalf("create log: %v", err)
	}

	var got models.FormatLog
	if err := database.First(&got, "id = ?", "log-1").Error; err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got.Tone != "formal" || got.TextLength != 7 {
		t.Fatalf("unexpected row: %#v", got)
	}
}
