package health

import (
	"encoding/json"
	"net/http"
)

// Handler exposes the health endpoint.
type Handler struct {
	Env string
}

// Status reports liveness. It never touches the mail transport, so it stays
// green even when SMTP is down.
func (h Handler) Status(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	payload := map[string]string{"status": "OK"}
	if h.Env != "" {
		payload["env"] = h.Env
	}
	_ = json.NewEncoder(w).Encode(payload)
}
