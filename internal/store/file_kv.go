package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	fileKVName    = "storage.json"
	fileKVCorrupt = fileKVName + ".corrupt"
)

// FileKV keeps every key in one JSON object on disk.
// Each Set rewrites the whole file through a temp file + rename.
type FileKV struct {
	Dir string
}

func OpenFileKV(dir string) (*FileKV, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("file storage: empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file storage: %w", err)
	}
	return &FileKV{Dir: dir}, nil
}

func (s *FileKV) path() string { return filepath.Join(s.Dir, fileKVName) }

func (s *FileKV) readAll() (map[string]string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return map[string]string{}, nil
	}
	entries := map[string]string{}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrCorrupt, s.path(), err)
	}
	return entries, nil
}

func (s *FileKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	entries, err := s.readAll()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

func (s *FileKV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := s.readAll()
	if errors.Is(err, ErrCorrupt) {
		// Keep the damaged file for inspection and start over.
		if err := os.Rename(s.path(), filepath.Join(s.Dir, fileKVCorrupt)); err != nil {
			return fmt.Errorf("move aside corrupt %s: %w", s.path(), err)
		}
		entries, err = map[string]string{}, nil
	}
	if err != nil {
		return err
	}
	entries[key] = value
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, fileKVName+".*.tmp", s.path(), append(b, '\n'), 0o600)
}

func (s *FileKV) Close() error { return nil }

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
