package handlers

import (
	"net/http"

	"github.com/softpen/tonerelay/internal/usage"
)

const (
	usageMessageActive = "people are making their words land better 🎉"
	usageMessageEmpty  = "be the first to give your words a new tone ✨"
)

// UsageHandler handles GET /usage
func UsageHandler(store *usage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total := store.Read()
		message := usageMessageEmpty
		if total > 0 {
			message = usageMessageActive
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"totalUsage": total,
			"message":    message,
		})
	}
}
