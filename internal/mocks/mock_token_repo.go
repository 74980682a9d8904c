package mocks

import (
	"context"

	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

// MockTokenRepo follows the MockUserRepo conventions: a missing token is ErrRecordNotFound, a
// missing write hook is an error.
type MockTokenRepo struct {
	domain.TokenRepository
	CreateFunc           func(ctx context.Context, token *domain.Token) error
	DeleteByHashFunc     func(ctx context.Context, hash []byte, scope string) error
	DeleteAllForUserFunc func(ctx context.Context, tokenScope string, userID int) error
}

func (m *MockTokenRepo) Create(ctx context.Context, token *domain.Token) error {
	if m.CreateFunc == nil {
		return unexpectedCall("TokenRepository.Create")
	}
	return m.CreateFunc(ctx, token)
}

func (m *MockTokenRepo) DeleteByHash(ctx context.Context, hash []byte, scope string) error {
	if m.DeleteByHashFunc == nil {
		return domain.ErrRecordNotFound
	}
	return m.DeleteByHashFunc(ctx, hash, scope)
}

func (m *MockTokenRepo) DeleteAllForUser(ctx context.Context, tokenScope string, userID int) error {
	if m.DeleteAllForUserFunc == nil {
		return unexpectedCall("TokenRepository.DeleteAllForUser")
	}
	return m.DeleteAllForUserFunc(ctx, tokenScope, userID)
}
