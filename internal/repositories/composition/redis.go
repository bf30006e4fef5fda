package composition

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/runeforge/codex-api/internal/entities/forge"
	"github.com/runeforge/codex-api/internal/errors"
	"github.com/runeforge/codex-api/internal/pkg/clock"
	redisclient "github.com/runeforge/codex-api/internal/redis"
)

const (
	powerKeyPrefix     = "composition:power:"
	powerIndexKey      = "composition:power:index"
	techniqueKeyPrefix = "composition:technique:"
	techniqueIndexKey  = "composition:technique:index"
	armamentKeyPrefix  = "composition:armament:"
	armamentIndexKey   = "composition:armament:index"

	errIDEmpty = "composition ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis composition repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed composition repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Shared storage plumbing. Each composition kind stores one JSON document
// under its key prefix plus its id in a kind index set used for listing.

func (r *redisRepository) getDoc(ctx context.Context, key, kind, id string, dest any) error {
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.NotFoundf("%s %s not found", kind, id)
		}
		return errors.Wrapf(err, "failed to get %s %s", kind, id)
	}
	if err := json.Unmarshal([]byte(result), dest); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s %s", kind, id)
	}
	return nil
}

func (r *redisRepository) putDoc(ctx context.Context, key, indexKey, kind, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s %s", kind, id)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store %s %s", kind, id)
	}
	return nil
}

func (r *redisRepository) deleteDoc(ctx context.Context, key, indexKey, kind, id string) error {
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to check %s existence", kind)
	}
	if exists == 0 {
		return errors.NotFoundf("%s %s not found", kind, id)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete %s %s", kind, id)
	}
	return nil
}

func (r *redisRepository) listIDs(ctx context.Context, indexKey string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index %s", indexKey)
	}
	return ids, nil
}

func (r *redisRepository) stamp(createdAt *int64, updatedAt *int64) {
	now := r.clock.Now().Unix()
	if *createdAt == 0 {
		*createdAt = now
	}
	*updatedAt = now
}

// Powers

func (r *redisRepository) GetPower(ctx context.Context, input GetPowerInput) (*GetPowerOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var power forge.Power
	if err := r.getDoc(ctx, powerKeyPrefix+input.ID, "power", input.ID, &power); err != nil {
		return nil, err
	}
	return &GetPowerOutput{Power: &power}, nil
}

func (r *redisRepository) PutPower(ctx context.Context, input PutPowerInput) (*PutPowerOutput, error) {
	if input.Power == nil {
		return nil, errors.InvalidArgument("power cannot be nil")
	}
	if input.Power.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.stamp(&input.Power.CreatedAt, &input.Power.UpdatedAt)
	if err := r.putDoc(ctx, powerKeyPrefix+input.Power.ID, powerIndexKey, "power", input.Power.ID, input.Power); err != nil {
		return nil, err
	}
	return &PutPowerOutput{Power: input.Power}, nil
}

func (r *redisRepository) DeletePower(ctx context.Context, input DeletePowerInput) (*DeletePowerOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if err := r.deleteDoc(ctx, powerKeyPrefix+input.ID, powerIndexKey, "power", input.ID); err != nil {
		return nil, err
	}
	return &DeletePowerOutput{}, nil
}

func (r *redisRepository) ListPowers(ctx context.Context, input ListPowersInput) (*ListPowersOutput, error) {
	ids, err := r.listIDs(ctx, powerIndexKey)
	if err != nil {
		return nil, err
	}

	powers := make([]*forge.Power, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.GetPower(ctx, GetPowerInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, powerIndexKey, id)
				continue
			}
			return nil, err
		}
		powers = append(powers, getOutput.Power)
	}
	return &ListPowersOutput{Powers: powers}, nil
}

// Techniques

func (r *redisRepository) GetTechnique(ctx context.Context, input GetTechniqueInput) (*GetTechniqueOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var technique forge.Technique
	if err := r.getDoc(ctx, techniqueKeyPrefix+input.ID, "technique", input.ID, &technique); err != nil {
		return nil, err
	}
	return &GetTechniqueOutput{Technique: &technique}, nil
}

func (r *redisRepository) PutTechnique(ctx context.Context, input PutTechniqueInput) (*PutTechniqueOutput, error) {
	if input.Technique == nil {
		return nil, errors.InvalidArgument("technique cannot be nil")
	}
	if input.Technique.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.stamp(&input.Technique.CreatedAt, &input.Technique.UpdatedAt)
	err := r.putDoc(
		ctx,
		techniqueKeyPrefix+input.Technique.ID,
		techniqueIndexKey,
		"technique",
		input.Technique.ID,
		input.Technique,
	)
	if err != nil {
		return nil, err
	}
	return &PutTechniqueOutput{Technique: input.Technique}, nil
}

func (r *redisRepository) DeleteTechnique(
	ctx context.Context,
	input DeleteTechniqueInput,
) (*DeleteTechniqueOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if err := r.deleteDoc(ctx, techniqueKeyPrefix+input.ID, techniqueIndexKey, "technique", input.ID); err != nil {
		return nil, err
	}
	return &DeleteTechniqueOutput{}, nil
}

func (r *redisRepository) ListTechniques(ctx context.Context, input ListTechniquesInput) (*ListTechniquesOutput, error) {
	ids, err := r.listIDs(ctx, techniqueIndexKey)
	if err != nil {
		return nil, err
	}

	techniques := make([]*forge.Technique, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.GetTechnique(ctx, GetTechniqueInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, techniqueIndexKey, id)
				continue
			}
			return nil, err
		}
		techniques = append(techniques, getOutput.Technique)
	}
	return &ListTechniquesOutput{Techniques: techniques}, nil
}

// Armaments

func (r *redisRepository) GetArmament(ctx context.Context, input GetArmamentInput) (*GetArmamentOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var armament forge.Armament
	if err := r.getDoc(ctx, armamentKeyPrefix+input.ID, "armament", input.ID, &armament); err != nil {
		return nil, err
	}
	return &GetArmamentOutput{Armament: &armament}, nil
}

func (r *redisRepository) PutArmament(ctx context.Context, input PutArmamentInput) (*PutArmamentOutput, error) {
	if input.Armament == nil {
		return nil, errors.InvalidArgument("armament cannot be nil")
	}
	if input.Armament.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.stamp(&input.Armament.CreatedAt, &input.Armament.UpdatedAt)
	err := r.putDoc(
		ctx,
		armamentKeyPrefix+input.Armament.ID,
		armamentIndexKey,
		"armament",
		input.Armament.ID,
		input.Armament,
	)
	if err != nil {
		return nil, err
	}
	return &PutArmamentOutput{Armament: input.Armament}, nil
}

func (r *redisRepository) DeleteArmament(ctx context.Context, input DeleteArmamentInput) (*DeleteArmamentOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if err := r.deleteDoc(ctx, armamentKeyPrefix+input.ID, armamentIndexKey, "armament", input.ID); err != nil {
		return nil, err
	}
	return &DeleteArmamentOutput{}, nil
}

func (r *redisRepository) ListArmaments(ctx context.Context, input ListArmamentsInput) (*ListArmamentsOutput, error) {
	ids, err := r.listIDs(ctx, armamentIndexKey)
	if err != nil {
		return nil, err
	}

	armaments := make([]*forge.Armament, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.GetArmament(ctx, GetArmamentInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				r.client.SRem(ctx, armamentIndexKey, id)
				continue
			}
			return nil, err
		}
		armaments = append(armaments, getOutput.Armament)
	}
	return &ListArmamentsOutput{Armaments: armaments}, nil
}
