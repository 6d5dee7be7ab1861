package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dog-sitters/internal/domain/listings"

	goredis "github.com/go-redis/redis/v8"
)

const queryStateKeyPrefix = "sitters:query:"

// QueryStateRepo guarda el QueryState de cada usuario como JSON con TTL.
// ttl <= 0 guarda sin vencimiento.
type QueryStateRepo struct {
	client *goredis.Client
	ttl    time.Duration
}

var _ listings.StateRepository = (*QueryStateRepo)(nil)

func NewQueryStateRepo(client *goredis.Client, ttl time.Duration) *QueryStateRepo {
	return &QueryStateRepo{client: client, ttl: ttl}
}

// NewClient arma el cliente y verifica la conexión.
func NewClient(ctx context.Context, addr string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr: addr,
		DB:   db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis %s: %w", addr, err)
	}
	return client, nil
}

func queryStateKey(userID string) string {
	return queryStateKeyPrefix + userID
}

func (r *QueryStateRepo) Get(ctx context.Context, userID string) (listings.QueryState, error) {
	val, err := r.client.Get(ctx, queryStateKey(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return listings.QueryState{}, listings.ErrStateNotFound
	}
	if err != nil {
		return listings.QueryState{}, fmt.Errorf("getting query state of %s: %w", userID, err)
	}

	var q listings.QueryState
	if err := json.Unmarshal(val, &q); err != nil {
		// Un valor corrupto se trata como ausente; el próximo Save lo pisa.
		return listings.QueryState{}, listings.ErrStateNotFound
	}
	return q, nil
}

func (r *QueryStateRepo) Save(ctx context.Context, userID string, q listings.QueryState) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	ttl := r.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, queryStateKey(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("saving query state of %s: %w", userID, err)
	}
	return nil
}

func (r *QueryStateRepo) Delete(ctx context.Context, userID string) error {
	n, err := r.client.Del(ctx, queryStateKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("deleting query state of %s: %w", userID, err)
	}
	if n == 0 {
		return listings.ErrStateNotFound
	}
	return nil
}
