// Package auth issues and verifies the short-lived access tokens handed out with every
// refresh token.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by an access token. Subject holds the user id and ID a unique token id
// used for revocation.
type Claims struct {
	jwt.RegisteredClaims
	Staff bool `json:"staff"`
}

func (c *Claims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}

type AccessToken struct {
	Token  string
	Claims *Claims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "theatre-reservation-api",
		now:    time.Now,
	}
}

func (i *Issuer) Issue(user *domain.User) (*AccessToken, error) {
	now := i.now().UTC()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			Issuer:    i.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Staff: user.IsStaff,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &AccessToken{Token: signed, Claims: claims}, nil
}

func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.UserID(); err != nil || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
