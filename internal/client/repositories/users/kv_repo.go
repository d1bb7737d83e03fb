package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/astroerik-coder/agrostock/internal/client/models"
	"github.com/astroerik-coder/agrostock/internal/client/repositories/kv"
)

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]models.User, error) {
	data, err := r.store.Get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	return decodeUsers(data)
}

func (r *KVRepository) Update(ctx context.Context, fn func(users []models.User) ([]models.User, error)) error {
	return r.store.Update(ctx, KeyUsers, func(old []byte) ([]byte, error) {
		current, err := decodeUsers(old)
		if err != nil {
			return nil, err
		}
		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		if next == nil {
			next = []models.User{}
		}
		data, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("failed to encode users: %w", err)
		}
		return data, nil
	})
}

func (r *KVRepository) GetSession(ctx context.Context) (*models.Session, bool, error) {
	data, err := r.store.Get(ctx, KeySession)
	if err != nil {
		return nil, false, err
	}
	legacy := false
	if data == nil {
		data, err = r.store.Get(ctx, KeyLegacySession)
		if err != nil {
			return nil, false, err
		}
		legacy = data != nil
	}
	if data == nil || string(data) == "null" {
		return nil, false, nil
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, legacy, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, legacy, nil
}

func (r *KVRepository) SetSession(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return r.store.Set(ctx, KeySession, data)
}

func (r *KVRepository) DeleteSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, KeySession); err != nil {
		return err
	}
	return r.store.Delete(ctx, KeyLegacySession)
}

func decodeUsers(data []byte) ([]models.User, error) {
	users := make([]models.User, 0)
	if data == nil {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	return users, nil
}
