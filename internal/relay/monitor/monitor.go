package monitor

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/softpen/tonerelay/internal/db/models"
	"gorm.io/gorm"
)

const (
	// MaxErrorSnippetSize limits stored error snippets
	MaxErrorSnippetSize = 1024
	// MaxMemoryLogs limits the in-memory log cache
	MaxMemoryLogs = 100
)

// RequestMonitor records format request metadata and aggregate stats.
// Text content is never recorded, only its length.
type RequestMonitor struct {
	db *gorm.DB

	// In-memory cache for recent logs (thread-safe)
	recentLogs []models.FormatLog
	logsMu     sync.RWMutex

	// In-memory stats (updated atomically)
	totalRequests atomic.Int64
	successCount  atomic.Int64
	errorCount    atomic.Int64
}

// NewRequestMonitor creates a RequestMonitor backed by db.
func NewRequestMonitor(db *gorm.DB) *RequestMonitor {
	rm := &RequestMonitor{
		db:         db,
		recentLogs: make([]models.FormatLog, 0, MaxMemoryLogs),
	}

	if err := db.AutoMigrate(&models.FormatLog{}); err != nil {
		log.Printf("[Monitor] Failed to migrate FormatLog table: %v", err)
	}

	rm.loadStatsFromDB()
	return rm
}

// LogRequest records a format request (row insert is async, non-blocking).
func (rm *RequestMonitor) LogRequest(entry models.FormatLog) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}
	if len(entry.Error) > MaxErrorSnippetSize {
		entry.Error = entry.Error[:MaxErrorSnippetSize] + "...[truncated]"
	}

	rm.totalRequests.Add(1)
	if entry.Status >= 200 && entry.Status < 400 {
		rm.successCount.Add(1)
	} else {
		rm.errorCount.Add(1)
	}

	rm.logsMu.Lock()
	rm.recentLogs = append([]models.FormatLog{entry}, rm.recentLogs...)
	if len(rm.recentLogs) > MaxMemoryLogs {
		rm.recentLogs = rm.recentLogs[:MaxMemoryLogs]
	}
	rm.logsMu.Unlock()

	go func(entry models.FormatLog) {
		if err := rm.db.Create(&entry).Error; err != nil {
			log.Printf("[Monitor] Failed to save log: %v", err)
		}
	}(entry)
}

// GetLogs returns recent request logs, newest first.
func (rm *RequestMonitor) GetLogs(limit int) []models.FormatLog {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []models.FormatLog
	if err := rm.db.Order("timestamp DESC").Limit(limit).Find(&logs).Error; err != nil {
		log.Printf("[Monitor] Failed to get logs from DB: %v", err)
		// Fallback to memory
		rm.logsMu.RLock()
		defer rm.logsMu.RUnlock()
		if limit > len(rm.recentLogs) {
			limit = len(rm.recentLogs)
		}
		return rm.recentLogs[:limit]
	}
	return logs
}

// GetStats returns aggregated request statistics.
func (rm *RequestMonitor) GetStats() models.FormatStats {
	return models.FormatStats{
		TotalRequests: rm.totalRequests.Load(),
		SuccessCount:  rm.successCount.Load(),
		ErrorCount:    rm.errorCount.Load(),
	}
}

// loadStatsFromDB loads initial statistics from database
func (rm *RequestMonitor) loadStatsFromDB() {
	var total, success, errors int64

	rm.db.Model(&models.FormatLog{}).Count(&total)
	rm.db.Model(&models.FormatLog{}).Where("status >= 200 AND status < 400").Count(&success)
	rm.db.Model(&models.FormatLog{}).Where("status < 200 OR status >= 400").Count(&errors)

	rm.totalRequests.Store(total)
	rm.successCount.Store(success)
	rm.errorCount.Store(errors)

	log.Printf("[Monitor] Loaded stats: total=%d, success=%d, errors=%d", total, success, errors)
}
