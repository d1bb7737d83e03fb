package kv

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
)

const fileExt = ".json"

// FileStore keeps one object per key under a viant/afs base URL such as
// file:///var/lib/agrostock or mem://localhost/agrostock. Object names are the
// base64url-encoded key, so any key maps to a portable file name.
//
// Writes are serialised in-process only; two processes sharing one directory
// can still lose updates.
type FileStore struct {
	fs      afs.Service
	baseURL string
	mu      sync.RWMutex
}

func NewFileStore(fs afs.Service, baseURL string) *FileStore {
	return &FileStore{fs: fs, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(ctx, key)
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, key, value)
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	url := s.objectURL(key)
	ok, err := s.fs.Exists(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := s.fs.Delete(ctx, url); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *FileStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.get(ctx, key)
	if err != nil {
		return err
	}
	value, err := fn(old)
	if err != nil {
		return err
	}
	return s.set(ctx, key, value)
}

func (s *FileStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	ok, err := s.fs.Exists(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv keys: %w", err)
	}
	if !ok {
		return keys, nil
	}

	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv keys: %w", err)
	}
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), fileExt) {
			continue
		}
		key, err := decodeKey(object.Name())
		if err != nil {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) get(ctx context.Context, key string) ([]byte, error) {
	url := s.objectURL(key)
	ok, err := s.fs.Exists(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		return ErrNilValue
	}
	if err := s.fs.Upload(ctx, s.objectURL(key), 0o640, bytes.NewReader(value)); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *FileStore) objectURL(key string) string {
	return s.baseURL + "/" + base64.RawURLEncoding.EncodeToString([]byte(key)) + fileExt
}

func decodeKey(name string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(name, fileExt))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
