package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	appmiddleware "github.com/metinatakli/theatre-reservation-system/internal/middleware"
	appvalidator "github.com/metinatakli/theatre-reservation-system/internal/validator"
)

const (
	ErrInternalServer     = appmiddleware.MsgInternalServer
	ErrNotFound           = appmiddleware.MsgNotFound
	ErrUnauthorizedAccess = "You must be authenticated to access this resource"
	ErrInvalidToken       = "Invalid or expired authentication token"
	ErrInvalidCredentials = "Invalid authentication credentials"
	ErrForbidden          = "You do not have permission to perform this action"
	ErrEditConflict       = "Unable to update the record due to an edit conflict, please try again"
	ErrFailedValidation   = "One or more fields are invalid"
	ErrTicketsRejected    = "One or more tickets could not be reserved"
	ErrEmailTaken         = "A user with this email already exists"
	ErrUnknownReference   = "One or more referenced records do not exist"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	app.writeErrorBody(w, r, status, resp)
}

func (app *Application) writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body any) {
	err := app.writeJSON(w, status, body, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) invalidTokenResponse(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidToken)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbidden)
}

func (app *Application) editConflictResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusConflict, ErrEditConflict)
}

// failedValidationResponse reports validator errors field by field. Any other error is
// sent as a plain bad request.
func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, len(validationErrs)),
	}

	for i, fe := range validationErrs {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: fe.Field(),
			Issue: appvalidator.ValidationMessage(fe),
		}
	}

	app.writeErrorBody(w, r, http.StatusBadRequest, resp)
}

func (app *Application) ticketErrorsResponse(w http.ResponseWriter, r *http.Request, errs domain.TicketErrors) {
	resp := api.TicketErrorResponse{
		Message:      ErrTicketsRejected,
		RequestId:    middleware.GetReqID(r.Context()),
		Timestamp:    time.Now(),
		TicketErrors: make([]api.TicketError, len(errs)),
	}

	for i, te := range errs {
		resp.TicketErrors[i] = api.TicketError{
			Index: te.Index,
			Field: te.Field,
			Issue: te.Issue,
		}
	}

	app.writeErrorBody(w, r, http.StatusBadRequest, resp)
}

// paramErrorResponse reports parameters the router could not bind. Path parameters are
// named <resource>_id, which keeps the message in line with invalidIDError.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError

	if !errors.As(err, &formatErr) {
		app.badRequestResponse(w, r, err)
		return
	}

	if resource, ok := strings.CutSuffix(formatErr.ParamName, "_id"); ok {
		app.badRequestResponse(w, r, invalidIDError(strings.ReplaceAll(resource, "_", " ")))
		return
	}

	app.badRequestResponse(w, r, fmt.Errorf("%s must be an integer", formatErr.ParamName))
}

func invalidIDError(name string) error {
	return fmt.Errorf("invalid %s ID", name)
}
