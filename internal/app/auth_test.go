package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/metinatakli/theatre-reservation-system/internal/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	app         *Application
	userRepo    *mocks.MockUserRepo
	tokenRepo   *mocks.MockTokenRepo
	redisClient *mocks.MockRedisClient
}

func (s *AuthTestSuite) SetupTest() {
	s.userRepo = &mocks.MockUserRepo{}
	s.tokenRepo = &mocks.MockTokenRepo{}
	s.app = newTestApplication(func(a *Application) {
		a.userRepo = s.userRepo
		a.tokenRepo = s.tokenRepo
	})
	s.redisClient = s.app.redis.(*mocks.MockRedisClient)
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func registeredUser(s *AuthTestSuite) *domain.User {
	user := &domain.User{ID: 5, Email: "user@example.com"}
	s.Require().NoError(user.Password.Set("testpass123"))
	return user
}

func (s *AuthTestSuite) TestCreateTokenPair() {
	tests := []struct {
		name           string
		input          api.TokenRequest
		lookupErr      error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "valid credentials",
			input:      api.TokenRequest{Email: "User@Example.com", Password: "testpass123"},
			wantStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			input:          api.TokenRequest{Email: "user@example.com", Password: "wrongpass1"},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name:           "unknown email",
			input:          api.TokenRequest{Email: "ghost@example.com", Password: "testpass123"},
			lookupErr:      domain.ErrRecordNotFound,
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name:       "missing password",
			input:      api.TokenRequest{Email: "user@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:           "database error",
			input:          api.TokenRequest{Email: "user@example.com", Password: "testpass123"},
			lookupErr:      errors.New("connection reset"),
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			user := registeredUser(s)

			s.userRepo.GetByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
				if tt.lookupErr != nil {
					return nil, tt.lookupErr
				}
				s.Equal("user@example.com", email)
				return user, nil
			}

			var stored *domain.Token
			s.tokenRepo.CreateFunc = func(ctx context.Context, token *domain.Token) error {
				stored = token
				return nil
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/users/token", tt.input)
			s.app.Routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				resp := decodeJSON[api.TokenPairResponse](s.T(), w)

				claims, err := s.app.issuer.Parse(resp.Access)
				s.Require().NoError(err)
				s.Equal("5", claims.Subject)

				s.Require().NotNil(stored)
				s.Equal(domain.HashToken(resp.Refresh), stored.Hash)
				s.Equal(domain.RefreshScope, stored.Scope)
				s.WithinDuration(time.Now().Add(24*time.Hour), stored.Expiry, time.Minute)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}

func (s *AuthTestSuite) TestRefreshTokenPair() {
	tests := []struct {
		name           string
		lookupErr      error
		deleteErr      error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "rotates the refresh token",
			wantStatus: http.StatusOK,
		},
		{
			name:           "unknown or expired token",
			lookupErr:      domain.ErrRecordNotFound,
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidToken,
		},
		{
			name:           "token consumed concurrently",
			deleteErr:      domain.ErrRecordNotFound,
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			user := registeredUser(s)

			s.userRepo.GetByTokenFunc = func(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
				s.Equal(domain.HashToken("old-refresh"), hash)
				s.Equal(domain.RefreshScope, scope)
				if tt.lookupErr != nil {
					return nil, tt.lookupErr
				}
				return user, nil
			}

			deleted := false
			s.tokenRepo.DeleteByHashFunc = func(ctx context.Context, hash []byte, scope string) error {
				deleted = true
				return tt.deleteErr
			}

			var stored *domain.Token
			s.tokenRepo.CreateFunc = func(ctx context.Context, token *domain.Token) error {
				stored = token
				return nil
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/users/token/refresh", api.RefreshRequest{Refresh: "old-refresh"})
			s.app.Routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				s.True(deleted)
				resp := decodeJSON[api.TokenPairResponse](s.T(), w)
				s.NotEqual("old-refresh", resp.Refresh)
				s.Equal(domain.HashToken(resp.Refresh), stored.Hash)
			} else {
				s.Nil(stored)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}

func (s *AuthTestSuite) TestVerifyToken() {
	s.Run("valid token", func() {
		s.SetupTest()

		token, err := s.app.issuer.Issue(testUser)
		s.Require().NoError(err)

		s.redisClient.On("Exists", mock.Anything, []string{"revoked_access_token:" + token.Claims.ID}).
			Return(redis.NewIntResult(0, nil))

		w, r := executeRequest(s.T(), http.MethodPost, "/users/token/verify", api.VerifyRequest{Token: token.Token})
		s.app.Routes().ServeHTTP(w, r)

		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{}`, w.Body.String())
	})

	s.Run("revoked token", func() {
		s.SetupTest()

		token, err := s.app.issuer.Issue(testUser)
		s.Require().NoError(err)

		s.redisClient.On("Exists", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil))

		w, r := executeRequest(s.T(), http.MethodPost, "/users/token/verify", api.VerifyRequest{Token: token.Token})
		s.app.Routes().ServeHTTP(w, r)

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodPost, "/users/token/verify", api.VerifyRequest{Token: "abc.def.ghi"})
		s.app.Routes().ServeHTTP(w, r)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthTestSuite) TestLogout() {
	s.SetupTest()

	w, r := executeRequest(s.T(), http.MethodPost, "/users/logout", nil)
	r = authenticate(s.T(), s.app, r, testUser)

	s.redisClient.On("Set", mock.Anything, mock.AnythingOfType("string"), 1, mock.AnythingOfType("time.Duration")).
		Return(redis.NewStatusResult("OK", nil)).Once()

	wiped := false
	s.tokenRepo.DeleteAllForUserFunc = func(ctx context.Context, scope string, userID int) error {
		s.Equal(testUser.ID, userID)
		wiped = true
		return nil
	}

	s.app.Routes().ServeHTTP(w, r)

	s.Equal(http.StatusNoContent, w.Code)
	s.True(wiped)
	s.redisClient.AssertExpectations(s.T())
}
