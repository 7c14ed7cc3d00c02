package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/softpen/tonerelay/internal/apperrors"
	"github.com/softpen/tonerelay/internal/db/models"
	"github.com/softpen/tonerelay/internal/gateway"
	"github.com/softpen/tonerelay/internal/logging"
	"github.com/softpen/tonerelay/internal/relay/monitor"
	"github.com/softpen/tonerelay/internal/util"
)

// FormatHandler handles POST /format
func FormatHandler(gw *gateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gateway.FormatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("⚠️ [%s] Format parse error: %v", logging.GetRequestID(r.Context()), err)
			writeError(w, apperrors.Validation("Missing text or tone"))
			return
		}

		resp, err := gw.Format(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// FormatHandlerWithMonitor wraps FormatHandler with request logging.
// Only metadata is recorded: tone, text length, status, duration.
func FormatHandlerWithMonitor(gw *gateway.Gateway, rm *monitor.RequestMonitor) http.HandlerFunc {
	baseHandler := FormatHandler(gw)

	return func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		// Read and restore body so both the logger and the base handler see it
		bodyBytes, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(bodyBytes)))

		var req gateway.FormatRequest
		json.Unmarshal(bodyBytes, &req)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		baseHandler(rec, r)

		var errorMsg string
		if rec.statusCode >= 400 {
			var errResp struct {
				Error string `json:"error"`
			}
			if json.Unmarshal([]byte(rec.body.String()), &errResp) == nil {
				errorMsg = util.TruncateLog(errResp.Error, util.DefaultLogMaxLen)
			}
		}

		rm.LogRequest(models.FormatLog{
			Method:     r.Method,
			URL:        r.URL.Path,
			Status:     rec.statusCode,
			Duration:   time.Since(startTime).Milliseconds(),
			Tone:       req.Tone,
			TextLength: gateway.UTF16Len(req.Text),
			Error:      errorMsg,
		})
	}
}

// responseRecorder wraps http.ResponseWriter to capture status code and body
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       strings.Builder
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
