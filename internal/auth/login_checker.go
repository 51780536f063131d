package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// IsLogged resolves the token into its session. An unknown or expired token is
// reported as not logged, without an error.
func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (LoginSession, bool, error) {
	if token == "" {
		return LoginSession{}, false, nil
	}

	val, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return LoginSession{}, false, nil
	}
	if err != nil {
		return LoginSession{}, false, err
	}

	session, err := decodeSession(token, val)
	if err != nil {
		return LoginSession{}, false, err
	}

	if time.Since(session.CreatedAt) > lc.ttl {
		return LoginSession{}, false, nil
	}

	return session, true, nil
}
