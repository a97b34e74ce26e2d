package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ThriveAssessments/case-manager/internal/config"
	domain "github.com/ThriveAssessments/case-manager/internal/domain/referral"
)

const keyPrefix = "referral_draft:"

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// RedisDraftStore holds wizard draft state as JSON under a TTL, so abandoned
// drafts expire on their own.
type RedisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{client: client}
}

var _ domain.DraftStore = (*RedisDraftStore)(nil)

func (s *RedisDraftStore) Save(
	ctx context.Context,
	id string,
	state domain.DraftState,
	ttl time.Duration,
) error {

	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, keyPrefix+id, payload, ttl).Err()
}

func (s *RedisDraftStore) Get(
	ctx context.Context,
	id string,
) (domain.DraftState, error) {

	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DraftState{}, domain.ErrDraftNotFound
	}
	if err != nil {
		return domain.DraftState{}, err
	}

	var state domain.DraftState
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.DraftState{}, err
	}

	return state, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
