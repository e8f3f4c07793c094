package store

import (
	"context"
	"sync"
)

// MemoryKV is a process-local KV. Nothing survives exit.
type MemoryKV struct {
	mu      sync.Mutex
	entries map[string]string
	sets    int
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: map[string]string{}}
}

func (s *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *MemoryKV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	s.sets++
	return nil
}

// Writes reports how many Set calls succeeded.
func (s *MemoryKV) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

func (s *MemoryKV) Close() error { return nil }
