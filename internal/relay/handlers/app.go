package handlers

import (
	"net/http"

	"github.com/softpen/tonerelay/internal/web"
)

// AppHandler serves the embedded single-page client. It is registered as
// the router's catch-all so every non-API path falls back to the app.
func AppHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(web.AppHTML))
	}
}
