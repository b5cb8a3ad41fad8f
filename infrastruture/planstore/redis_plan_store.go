package planstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/mazegen/placement"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "maze"

// RedisPlanStore keeps placement plans in Redis as JSON with a TTL.
type RedisPlanStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisPlanStore initializes a RedisPlanStore with the provided Redis client and TTL.
func NewRedisPlanStore(client *redis.Client, ttlSeconds int) (*RedisPlanStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid plan ttl: %d", ttlSeconds)
	}

	return &RedisPlanStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultKeyPrefix,
	}, nil
}

// Save writes the plan with a fresh expiration. Plan ids are never reused, so
// a single SET needs no locking.
func (s *RedisPlanStore) Save(ctx context.Context, plan *placement.Plan) error {
	payload, err := encodePlan(plan)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(plan.ID), payload, s.ttl).Err()
}

// ByID loads a plan. Expired and unknown plans return i.ErrNotFound.
func (s *RedisPlanStore) ByID(ctx context.Context, id uuid.UUID) (*placement.Plan, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrNotFound
		}
		return nil, err
	}
	return decodePlan(payload)
}

func (s *RedisPlanStore) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:plan:%s", s.prefix, id)
}

func encodePlan(plan *placement.Plan) ([]byte, error) {
	if plan == nil {
		return nil, errors.New("nil plan")
	}
	payload, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encoding plan %s: %w", plan.ID, err)
	}
	return payload, nil
}

func decodePlan(payload []byte) (*placement.Plan, error) {
	var plan placement.Plan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &plan, nil
}
