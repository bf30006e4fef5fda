package parts

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/errors"
	redisclient "github.com/runeforge/codex-api/internal/redis"
)

const (
	partKeyPrefix = "part:catalog:"
	partIndexKey  = "part:catalog:index"

	errEntryIDEmpty = "entry ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis parts repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed parts repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}

	key := partKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("part %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get part %s", input.ID)
	}

	var entry forge.PartCatalogEntry
	if err := json.Unmarshal([]byte(result), &entry); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal part %s", input.ID)
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument("entry cannot be nil")
	}
	if input.Entry.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}
	if input.Entry.Name == "" {
		return nil, errors.InvalidArgument("entry name cannot be empty")
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal part %s", input.Entry.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, partKeyPrefix+input.Entry.ID, data, 0)
	pipe.SAdd(ctx, partIndexKey, input.Entry.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store part %s", input.Entry.ID)
	}

	return &PutOutput{Entry: input.Entry}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}

	key := partKeyPrefix + input.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check part existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("part %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, partIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete part %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListSnapshot(ctx context.Context, input ListSnapshotInput) (*ListSnapshotOutput, error) {
	ids, err := r.client.SMembers(ctx, partIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read part index")
	}

	entries := make([]forge.PartCatalogEntry, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Stale index entries are cleaned up rather than failing the
			// snapshot.
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, partIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get part %s", id)
		}
		if input.Kind != "" && getOutput.Entry.Kind != input.Kind {
			continue
		}
		entries = append(entries, *getOutput.Entry)
	}

	// Set members come back in arbitrary order; snapshots sort by name so
	// repeated listings are stable.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return &ListSnapshotOutput{Entries: entries}, nil
}
