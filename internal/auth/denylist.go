package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "revoked_access_token:"

// Denylist remembers revoked access tokens until they would have expired anyway.
type Denylist struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewDenylist(client redis.UniversalClient) *Denylist {
	return &Denylist{
		client: client,
		now:    time.Now,
	}
}

func (d *Denylist) Revoke(ctx context.Context, claims *Claims) error {
	ttl := claims.ExpiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}

	return d.client.Set(ctx, revokedKeyPrefix+claims.ID, 1, ttl).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, claims *Claims) (bool, error) {
	n, err := d.client.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
