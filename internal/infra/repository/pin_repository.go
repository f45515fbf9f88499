package repository

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/observability/tracing"
)

const (
	pinSetKeyPrefix  = "bubbles:pins:"
	defaultNamespace = "default"
)

// toggleScript flips membership atomically and returns 1 when the member is
// present afterwards.
var toggleScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

type pinRepository struct {
	client *redis.Client
	key    string
}

// NewPinRepository stores pins in a redis set. Pins persist independently of
// any festival session; namespace separates users sharing one redis.
func NewPinRepository(client *redis.Client, namespace string) domain.PinRepository {
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &pinRepository{
		client: client,
		key:    pinSetKeyPrefix + namespace,
	}
}

func (r *pinRepository) Toggle(ctx context.Context, performerID int) (bool, error) {
	if performerID <= 0 {
		return false, ErrInvalidPerformer
	}

	ctx, span := tracing.StartRedisOperationSpan(ctx, "toggle", r.key)
	defer span.End()

	res, err := toggleScript.Run(ctx, r.client, []string{r.key}, performerID).Int()
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	return res == 1, nil
}

func (r *pinRepository) IsPinned(ctx context.Context, performerID int) (bool, error) {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "is_pinned", r.key)
	defer span.End()

	ok, err := r.client.SIsMember(ctx, r.key, performerID).Result()
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	return ok, nil
}

func (r *pinRepository) List(ctx context.Context) ([]int, error) {
	ctx, span := tracing.StartRedisOperationSpan(ctx, "list", r.key)
	defer span.End()

	members, err := r.client.SMembers(ctx, r.key).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %w", ErrRedisConnection, err)
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPinData, m)
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}
