package jsonutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Blue","rows":3}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "malformed", body: `{"name":`, wantErr: "body contains badly-formed JSON"},
		{name: "wrong type", body: `{"rows":"three"}`, wantErr: `body contains incorrect JSON type for field "rows"`},
		{name: "unknown field", body: `{"color":"red"}`, wantErr: `body contains unknown key "color"`},
		{name: "two values", body: `{"name":"a"}{"name":"b"}`, wantErr: "body must only contain a single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst payload
			err := ReadJSON(w, r, &dst)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, payload{Name: "Blue", Rows: 3}, dst)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteJSON(w, http.StatusCreated, payload{Name: "Blue"}, http.Header{"X-Test": []string{"1"}})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "1", w.Header().Get("X-Test"))
	assert.JSONEq(t, `{"name":"Blue","rows":0}`, w.Body.String())
}
