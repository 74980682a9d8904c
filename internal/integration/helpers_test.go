package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"request_id": {},
	"created_at": {},
	"show_time":  {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanValue(actual)

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			cleanValue(v[k])
		}
	case []any:
		for _, item := range v {
			cleanValue(item)
		}
	}
}

func jsonBody(t testing.TB, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// do sends a request straight to the router and decodes a JSON response into out when given.
func (a *TestApp) do(t testing.TB, method, path string, body any, headers map[string]string, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = jsonBody(t, body)
	}

	req, err := prepareRequest(method, path, reader, headers)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.App.Routes().ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}

	return rec.Code
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (a *TestApp) login(t testing.TB, email string) tokenPair {
	t.Helper()

	var pair tokenPair
	status := a.do(t, http.MethodPost, "/users/token", map[string]string{
		"email":    email,
		"password": testPassword,
	}, nil, &pair)
	require.Equal(t, http.StatusOK, status)

	return pair
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE tickets, reservations, performances, theatre_halls, play_actors, play_genres,
			plays, actors, genres, tokens, users
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func insertTheatreHall(t testing.TB, db *pgxpool.Pool, name string, rows, seatsInRow int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO theatre_halls (name, rows, seats_in_row) VALUES ($1, $2, $3) RETURNING id`,
		name, rows, seatsInRow).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertPlay(t testing.TB, db *pgxpool.Pool, title string) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO plays (title, description) VALUES ($1, $2) RETURNING id`,
		title, fmt.Sprintf("%s, as staged by the test company", title)).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertPerformance(t testing.TB, db *pgxpool.Pool, playID, hallID int, showTime time.Time) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO performances (play_id, theatre_hall_id, show_time) VALUES ($1, $2, $3) RETURNING id`,
		playID, hallID, showTime).Scan(&id)
	require.NoError(t, err)

	return id
}

func countTickets(t testing.TB, db *pgxpool.Pool, performanceID int) int {
	var n int
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tickets WHERE performance_id = $1`, performanceID).Scan(&n)
	require.NoError(t, err)

	return n
}

func countReservations(t testing.TB, db *pgxpool.Pool) int {
	var n int
	err := db.QueryRow(context.Background(), `SELECT COUNT(*) FROM reservations`).Scan(&n)
	require.NoError(t, err)

	return n
}

func seats(pairs ...[2]int) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf(`{"row": %d, "seat": %d}`, p[0], p[1])
	}

	return "[" + strings.Join(parts, ",") + "]"
}

func rawJSON(s string) json.RawMessage {
	return json.RawMessage(s)
}

func compareTakenPlaces(t testing.TB, res *http.Response, expected string) {
	var body struct {
		TakenPlaces json.RawMessage `json:"taken_places"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	require.JSONEq(t, expected, string(body.TakenPlaces))
}

func decodeInto(res *http.Response, out any) error {
	return json.NewDecoder(res.Body).Decode(out)
}
