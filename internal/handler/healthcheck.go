package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/jsonutil"
	"github.com/metinatakli/theatre-reservation-system/internal/vcs"
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// Pinger is a dependency the service cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthcheckHandler struct {
	env     string
	checks  map[string]Pinger
	timeout time.Duration
}

func NewHealthcheckHandler(env string, checks map[string]Pinger) *HealthcheckHandler {
	return &HealthcheckHandler{
		env:     env,
		checks:  checks,
		timeout: 2 * time.Second,
	}
}

func (h *HealthcheckHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status := StatusUp
	checks := make(map[string]string, len(h.checks))

	for name, dep := range h.checks {
		if err := dep.Ping(ctx); err != nil {
			checks[name] = StatusDown
			status = StatusDown
			continue
		}

		checks[name] = StatusUp
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: h.env,
		},
		Checks: checks,
	}

	code := http.StatusOK
	if status == StatusDown {
		code = http.StatusServiceUnavailable
	}

	err := jsonutil.WriteJSON(w, code, resp, nil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
