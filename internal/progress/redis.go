package progress

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisPersister stores the state as a plain string value.
type RedisPersister struct {
	client *redis.Client
	key    string
}

func NewRedisPersister(client *redis.Client) *RedisPersister {
	return &RedisPersister{client: client, key: Namespace}
}

func (p *RedisPersister) Load(ctx context.Context) ([]byte, error) {
	data, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoState
	}
	return data, err
}

func (p *RedisPersister) Save(ctx context.Context, data []byte) error {
	return p.client.Set(ctx, p.key, data, 0).Err()
}
