package rest

import (
	"context"
	"net/http"
)

// Health answers 200 while readiness holds and 503 otherwise.
func Health(readiness func(ctx context.Context) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if readiness != nil && !readiness(r.Context()) {
			WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
