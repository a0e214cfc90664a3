package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "gymstats-session||"
	tokensSetKey     = "gymstats-sessions"

	fieldUserID    = "user_id"
	fieldAdmin     = "admin"
	fieldCreatedAt = "created_at"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// SessionChecker resolves session tokens stored in redis hashes.
type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (c *SessionChecker) Principal(ctx context.Context, token string) (*Principal, error) {
	fields, err := c.redisClient.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if len(fields) == 0 || fields[fieldUserID] == "" {
		return nil, ErrSessionNotFound
	}

	createdAt, err := parseCreatedAt(fields[fieldCreatedAt])
	if err != nil {
		return nil, err
	}
	if c.now().Sub(createdAt) > c.ttl {
		return nil, ErrSessionExpired
	}

	return &Principal{
		UserID: fields[fieldUserID],
		Admin:  fields[fieldAdmin] == "1",
	}, nil
}

func parseCreatedAt(raw string) (time.Time, error) {
	createdAtUnix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("session created at %q: %w", raw, err)
	}
	return time.Unix(createdAtUnix, 0), nil
}
