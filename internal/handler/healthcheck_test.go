package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		checks     map[string]Pinger
		wantStatus int
		wantBody   string
		wantChecks map[string]string
	}{
		{
			name:       "all dependencies up",
			checks:     map[string]Pinger{"database": up, "redis": up},
			wantStatus: http.StatusOK,
			wantBody:   StatusUp,
			wantChecks: map[string]string{"database": StatusUp, "redis": StatusUp},
		},
		{
			name:       "redis down",
			checks:     map[string]Pinger{"database": up, "redis": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   StatusDown,
			wantChecks: map[string]string{"database": StatusUp, "redis": StatusDown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthcheckHandler("test", tt.checks)

			w := httptest.NewRecorder()
			h.GetHealth(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp api.HealthcheckResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantBody, resp.Status)
			assert.Equal(t, "test", resp.SystemInfo.Environment)
			assert.Equal(t, tt.wantChecks, resp.Checks)
		})
	}
}
