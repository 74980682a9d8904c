package domain

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

const RefreshScope = "refresh"

const refreshTokenBytes = 32

// Token is an opaque refresh token. Only Hash is persisted; Plaintext is handed to the client
// once, when the token is issued.
type Token struct {
	Plaintext string
	Hash      []byte
	UserID    int
	Expiry    time.Time
	Scope     string
}

func NewRefreshToken(userID int, ttl time.Duration) (*Token, error) {
	raw := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}

	plaintext := base64.RawURLEncoding.EncodeToString(raw)

	return &Token{
		Plaintext: plaintext,
		Hash:      HashToken(plaintext),
		UserID:    userID,
		Expiry:    time.Now().Add(ttl),
		Scope:     RefreshScope,
	}, nil
}

// HashToken is how a presented plaintext token is looked up in storage.
func HashToken(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	return sum[:]
}

type TokenRepository interface {
	Create(ctx context.Context, token *Token) error
	// DeleteByHash returns ErrRecordNotFound when no token matched.
	DeleteByHash(ctx context.Context, tokenHash []byte, tokenScope string) error
	DeleteAllForUser(ctx context.Context, tokenScope string, userID int) error
}
