package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/handler/http/response"
)

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db      Pinger
	appName string
	version string
}

func NewHealthHandler(db Pinger, appName, version string) HealthHandler {
	return &healthHandlerImpl{db: db, appName: appName, version: version}
}

type statusResponse struct {
	Status   string `json:"status"`
	App      string `json:"app"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}

// Root implements HealthHandler.
func (h *healthHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	response.SuccessWithMessage(w, "Welcome to "+h.appName, statusResponse{
		Status:  "online",
		App:     h.appName,
		Version: h.version,
	})
}

// Health implements HealthHandler.
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.ErrorContext(r.Context(), "database health check failed", "error", err)
		response.ServiceUnavailable(w, "Database unavailable")
		return
	}

	response.Success(w, statusResponse{
		Status:   "online",
		App:      h.appName,
		Version:  h.version,
		Database: "up",
	})
}
