package app

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/handler"
	appmiddleware "github.com/metinatakli/theatre-reservation-system/internal/middleware"
	"github.com/riandyrn/otelchi"
)

var _ api.ServerInterface = (*Application)(nil)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(appmiddleware.NotFoundHandler)
	r.MethodNotAllowed(appmiddleware.MethodNotAllowedHandler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.logRequest)
	r.Use(appmiddleware.RecoverPanic(app.logger))

	r.Get("/openapi.json", app.GetOpenAPISpec)

	if prefix := strings.TrimRight(app.config.Media.URLPrefix, "/"); prefix != "" {
		fs := http.StripPrefix(prefix, http.FileServer(http.Dir(app.images.Dir())))
		r.Get(prefix+"/*", fs.ServeHTTP)
	}

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.authorize},
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}

func (app *Application) GetHealthcheck(w http.ResponseWriter, r *http.Request) {
	app.healthcheckHandler().GetHealth(w, r)
}

// GetOpenAPISpec serves the API description the router is generated from.
func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	swagger, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) healthcheckHandler() *handler.HealthcheckHandler {
	checks := make(map[string]handler.Pinger)

	if app.db != nil {
		checks["database"] = app.db
	}

	if app.redis != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return app.redis.Ping(ctx).Err()
		})
	}

	return handler.NewHealthcheckHandler(app.config.Env, checks)
}
