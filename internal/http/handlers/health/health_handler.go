package health

import (
	"context"
	"net/http"

	"userservice/internal/http/responses"
)

// Pinger is satisfied by *db.Client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

type Response struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// Check reports whether a store connection can be acquired.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		responses.WriteJSON(w, http.StatusServiceUnavailable, Response{
			Status: "degraded",
			DB:     err.Error(),
		})
		return
	}

	responses.WriteJSON(w, http.StatusOK, Response{Status: "ok", DB: "ok"})
}
