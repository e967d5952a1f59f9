package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CSINCE90/retail-project/models"
)

// DefaultStorageKey is the fixed key the storefront persists its cart under.
const DefaultStorageKey = "retail:cart"

// ErrNoSnapshot is returned by Load when there is no usable snapshot; the
// store falls back to an empty cart.
var ErrNoSnapshot = errors.New("cart: no snapshot")

// Repository persists the full cart snapshot under a fixed storage key.
type Repository interface {
	Load(ctx context.Context) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

var _ Repository = (*redisRepository)(nil)

// redisCmdable is the slice of the go-redis API the repository needs.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisRepository struct {
	client redisCmdable
	key    string
	logger *zap.Logger
}

func NewRedisRepository(client *redis.Client, key string, logger *zap.Logger) Repository {
	if key == "" {
		key = DefaultStorageKey
	}
	return &redisRepository{
		client: client,
		key:    key,
		logger: logger,
	}
}

func (r *redisRepository) Load(ctx context.Context) (*models.Cart, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		r.logger.Error("Failed to load cart snapshot", zap.Error(err))
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// Malformed state is treated as absent state.
		r.logger.Warn("Discarding malformed cart snapshot", zap.Error(err))
		return nil, ErrNoSnapshot
	}

	return &cart, nil
}

func (r *redisRepository) Save(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		r.logger.Error("Failed to encode cart snapshot", zap.Error(err))
		return err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Warn("Failed to write cart snapshot", zap.Error(err))
		return err
	}

	return nil
}
