package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pricing-bot/internal/session"
	pkgredis "pricing-bot/pkg/redis"
)

// KV is the subset of the Redis client the session store needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Storage keeps chat sessions in Redis. Every read slides the expiry.
type Storage struct {
	kv  KV
	ttl time.Duration
}

func New(kv KV, ttl time.Duration) *Storage {
	return &Storage{kv: kv, ttl: ttl}
}

func (s *Storage) Get(ctx context.Context, chatID int64) (session.Session, error) {
	key := buildStateKey(chatID)

	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, pkgredis.Nil) {
		return session.Session{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("get state: %w", err)
	}

	// Snapshots written under an older wire format or schema either fail to
	// decode or fail validation. Both start the chat over.
	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, fmt.Errorf("unmarshal state: %v: %w", err, session.ErrNotFound)
	}
	if err := sess.State.Validate(); err != nil {
		return session.Session{}, fmt.Errorf("validate state: %v: %w", err, session.ErrNotFound)
	}

	if s.ttl > 0 {
		if _, err := s.kv.Expire(ctx, key, s.ttl); err != nil {
			return session.Session{}, fmt.Errorf("refresh ttl: %w", err)
		}
	}
	return sess, nil
}

func (s *Storage) Save(ctx context.Context, chatID int64, sess session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	return s.kv.Set(ctx, buildStateKey(chatID), data, s.ttl)
}

func (s *Storage) Delete(ctx context.Context, chatID int64) error {
	return s.kv.Del(ctx, buildStateKey(chatID))
}

func buildStateKey(chatID int64) string {
	return fmt.Sprintf("state:%d", chatID)
}
