package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"contact-api/utils"
)

// TokenRevoker invalidates every token a user held before a point in time.
// Logout writes the cut-off; the auth middleware reads it back.
type TokenRevoker interface {
	Revoke(ctx context.Context, userID uint) error
	RevokedAt(ctx context.Context, userID uint) (time.Time, error)
}

// RedisTokenRevoker stores the cut-off in Redis with a TTL matching the
// token lifetime, after which no outstanding token can still be valid.
type RedisTokenRevoker struct {
	client *redis.Client
}

func NewRedisTokenRevoker(client *redis.Client) *RedisTokenRevoker {
	return &RedisTokenRevoker{client: client}
}

func revocationKey(userID uint) string {
	return fmt.Sprintf("auth:revoked:%d", userID)
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, userID uint) error {
	now := time.Now().Unix()
	return r.client.Set(ctx, revocationKey(userID), now, utils.TokenLifetime).Err()
}

func (r *RedisTokenRevoker) RevokedAt(ctx context.Context, userID uint) (time.Time, error) {
	val, err := r.client.Get(ctx, revocationKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0), nil
}
