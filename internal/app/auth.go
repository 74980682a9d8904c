package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

// CreateTokenPair logs a user in with email and password.
func (app *Application) CreateTokenPair(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.TokenRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input.Email = normalizeEmail(input.Email)

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			logger.Error("failed to get user by email during login", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match {
		logger.Warn("login failed due to incorrect password", "user_id", user.ID)
		app.invalidCredentialsResponse(w, r)
		return
	}

	resp, err := app.issueTokenPair(r.Context(), user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// RefreshTokenPair rotates a refresh token: the presented one is consumed and a new pair
// is issued.
func (app *Application) RefreshTokenPair(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RefreshRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	hash := domain.HashToken(input.Refresh)

	user, err := app.userRepo.GetByToken(r.Context(), hash, domain.RefreshScope)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.invalidTokenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.tokenRepo.DeleteByHash(r.Context(), hash, domain.RefreshScope)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("refresh token used concurrently", "user_id", user.ID)
			app.invalidTokenResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp, err := app.issueTokenPair(r.Context(), user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var input api.VerifyRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	claims, err := app.issuer.Parse(input.Token)
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

	err = app.writeJSON(w, http.StatusOK, struct{}{}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Logout revokes the access token used for this request and every refresh token of the user.
func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	user := app.contextGetUser(r)
	claims := app.contextGetClaims(r)

	err := app.denylist.Revoke(r.Context(), claims)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.tokenRepo.DeleteAllForUser(r.Context(), domain.RefreshScope, user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("user logged out")

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) issueTokenPair(ctx context.Context, user *domain.User) (*api.TokenPairResponse, error) {
	access, err := app.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	refresh, err := domain.NewRefreshToken(user.ID, app.config.JWT.RefreshTTL)
	if err != nil {
		return nil, err
	}

	err = app.tokenRepo.Create(ctx, refresh)
	if err != nil {
		return nil, err
	}

	return &api.TokenPairResponse{
		Access:  access.Token,
		Refresh: refresh.Plaintext,
	}, nil
}
