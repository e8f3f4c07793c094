package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// ErrCorrupt reports stored data that cannot be parsed. Callers treat the key as absent;
// the next Set replaces the damaged data.
var ErrCorrupt = errors.New("corrupt storage")

// KV is a string-keyed durable store. Values are opaque strings; callers own the encoding.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendFile, nil
	case BackendFile, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q (want file|sqlite|memory)", ErrUnknownBackend, s)
	}
}

// Open returns the key/value store for backend rooted at dir.
// The memory backend ignores dir.
func Open(ctx context.Context, backend Backend, dir string) (KV, error) {
	switch backend {
	case "", BackendFile:
		return OpenFileKV(dir)
	case BackendSQLite:
		return OpenSQLiteKV(ctx, dir)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(backend))
	}
}
