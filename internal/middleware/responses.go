package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers htmx requests with a JSON body and everything else
// with plain text.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	Log(r.Context()).Debug("middleware rejected request", zap.Int("status", code), zap.String("reason", msg))
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
		return
	}
	http.Error(w, msg, code)
}
