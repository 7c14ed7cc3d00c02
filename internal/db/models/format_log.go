package models

// FormatLog stores per-request metadata for the monitor page. Submitted
// and rewritten text are deliberately absent; only the text length is
// recorded.
type FormatLog struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Timestamp  int64  `gorm:"index" json:"timestamp"`
	Method     string `json:"method"`
	URL        string `json:"url"`
	Status     int    `json:"status"`
	Duration   int64  `json:"duration"` // milliseconds
	Tone       string `gorm:"index" json:"tone,omitempty"`
	TextLength int    `json:"text_length,omitempty"`
	Error      string `json:"error,omitempty"`
}

// FormatStats holds aggregated statistics for format request logs
type FormatStats struct {
	TotalRequests int64 `json:"total_requests"`
	SuccessCount  int64 `json:"success_count"`
	ErrorCount    int64 `json:"error_count"`
}
