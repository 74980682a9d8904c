package app

import (
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"go.opentelemetry.io/otel/trace"
)

const staffScope = "staff"

// logRequest attaches a request scoped logger to the context and logs every response.
func (app *Application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
			logger = logger.With("trace_id", sc.TraceID().String())
		}

		r = contextSetLogger(r, logger)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logger.Info("request completed",
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// authorize applies the bearer requirement the generated router attached to the request.
// Operations without one are public and the "staff" scope also demands catalog rights.
func (app *Application) authorize(next http.Handler) http.Handler {
	staff := app.requireAuthentication(app.requireStaff(next))
	user := app.requireAuthentication(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, ok := r.Context().Value(api.BearerAuthScopes).([]string)

		switch {
		case !ok:
			next.ServeHTTP(w, r)
		case slices.Contains(scopes, staffScope):
			staff.ServeHTTP(w, r)
		default:
			user.ServeHTTP(w, r)
		}
	})
}

// requireAuthentication accepts a non-revoked bearer access token whose user still exists.
func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		header := r.Header.Get("Authorization")
		if header == "" {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
			app.invalidTokenResponse(w, r)
			return
		}

		claims, err := app.issuer.Parse(raw)
		if err != nil {
			app.invalidTokenResponse(w, r)
			return
		}

		revoked, err := app.denylist.IsRevoked(r.Context(), claims)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		if revoked {
			app.invalidTokenResponse(w, r)
			return
		}

		userId, err := claims.UserID()
		if err != nil {
			app.invalidTokenResponse(w, r)
			return
		}

		user, err := app.userRepo.GetById(r.Context(), userId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.invalidTokenResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		r = contextSetUser(r, user, claims)
		r = contextSetLogger(r, app.contextGetLogger(r).With("user_id", user.ID))

		next.ServeHTTP(w, r)
	})
}

// requireStaff must run after requireAuthentication.
func (app *Application) requireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := app.contextGetUser(r)

		if !user.CanManageCatalog() {
			app.contextGetLogger(r).Warn("staff only resource requested")
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
