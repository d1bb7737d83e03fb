package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/astroerik-coder/agrostock/internal/client/models"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/kv"
)

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) Load(ctx context.Context, category string) ([]models.Item, bool, error) {
	data, err := r.store.Get(ctx, Key(category))
	if err != nil {
		return nil, false, err
	}
	return decodeItems(category, data)
}

func (r *KVRepository) Update(ctx context.Context, category string, fn func(items []models.Item, found bool) ([]models.Item, error)) error {
	return r.store.Update(ctx, Key(category), func(old []byte) ([]byte, error) {
		current, found, err := decodeItems(category, old)
		if err != nil {
			return nil, err
		}
		next, err := fn(current, found)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []models.Item{}
		}
		data, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("failed to encode category %s: %w", category, err)
		}
		return data, nil
	})
}

func (r *KVRepository) Stored(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, KeyPrefix))
	}
	return out, nil
}

func decodeItems(category string, data []byte) ([]models.Item, bool, error) {
	items := make([]models.Item, 0)
	if data == nil {
		return items, false, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, true, fmt.Errorf("failed to decode category %s: %w", category, err)
	}
	if items == nil {
		items = make([]models.Item, 0)
	}
	return items, true, nil
}
