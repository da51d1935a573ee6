package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/wilran/internal/entities"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

const (
	recordKeyPrefix = "wilran:record:"
	rosterIndexKey  = "wilran:roster"
)

type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed roster. Records are stored as
// JSON with an index set listing their IDs.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{client: cfg.Client}
}

// NewRedis creates a Redis-backed roster over client
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}

// Create stores a new record
func (r *redisRepo) Create(ctx context.Context, enc *entities.Encounter) error {
	if err := validate(enc); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, recordKey(enc.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check record existence: %w", err)
	}
	if exists > 0 {
		return errExists(enc.ID)
	}

	data, err := json.Marshal(enc)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, recordKey(enc.ID), string(data), 0)
	pipe.SAdd(ctx, rosterIndexKey, enc.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

// Get retrieves a record by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Encounter, error) {
	if id == "" {
		return nil, errInvalid("record ID is required")
	}

	data, err := r.client.Get(ctx, recordKey(id)).Result()
	if err == redis.Nil {
		return nil, errNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var enc entities.Encounter
	if err := json.Unmarshal([]byte(data), &enc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &enc, nil
}

// List fetches every indexed record in parallel. IDs left in the index
// without a record are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*entities.Encounter, error) {
	ids, err := r.client.SMembers(ctx, rosterIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list record IDs: %w", err)
	}

	records := make([]*entities.Encounter, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			enc, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				log.Printf("Roster: index lists %s but no record exists, skipping", id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get record %s: %w", id, err)
			}
			records[i] = enc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*entities.Encounter, 0, len(records))
	for _, enc := range records {
		if enc != nil {
			out = append(out, enc)
		}
	}
	sortRecords(out)
	return out, nil
}

// Update replaces an existing record
func (r *redisRepo) Update(ctx context.Context, enc *entities.Encounter) error {
	if err := validate(enc); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, recordKey(enc.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check record existence: %w", err)
	}
	if exists == 0 {
		return errNotFound(enc.ID)
	}

	data, err := json.Marshal(enc)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := r.client.Set(ctx, recordKey(enc.ID), string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

// Delete removes a record and its index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errInvalid("record ID is required")
	}

	deleted, err := r.client.Del(ctx, recordKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if deleted == 0 {
		return errNotFound(id)
	}

	if err := r.client.SRem(ctx, rosterIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to remove record from index: %w", err)
	}
	return nil
}
