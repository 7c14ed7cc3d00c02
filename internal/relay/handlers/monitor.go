package handlers

import (
	"net/http"
	"strconv"

	"github.com/softpen/tonerelay/internal/relay/monitor"
)

// StatsHandler handles GET /api/stats
func StatsHandler(rm *monitor.RequestMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rm.GetStats())
	}
}

// LogsHandler handles GET /api/logs?limit=N
func LogsHandler(rm *monitor.RequestMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		logs := rm.GetLogs(limit)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"logs":  logs,
			"count": len(logs),
		})
	}
}
