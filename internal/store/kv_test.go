package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestKVBackends_SetGetRoundTrip(t *testing.T) {
	t.Parallel()

	backends := []Backend{BackendFile, BackendSQLite, BackendMemory}
	for _, b := range backends {
		b := b
		t.Run(string(b), func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			kv, err := Open(ctx, b, t.TempDir())
			if err != nil {
				t.Fatalf("open %s: %v", b, err)
			}
			t.Cleanup(func() { _ = kv.Close() })

			if _, ok, err := kv.Get(ctx, "tasks"); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}
			if err := kv.Set(ctx, "tasks", `["a"]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := kv.Set(ctx, "tasks", `["a","b"]`); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, ok, err := kv.Get(ctx, "tasks")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if got != `["a","b"]` {
				t.Fatalf("expected overwritten value, got %q", got)
			}
		})
	}
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	kv, err := OpenSQLiteKV(ctx, dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := kv.Set(ctx, "tasks", `["persisted"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	kv2, err := OpenSQLiteKV(ctx, dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv2.Close()
	got, ok, err := kv2.Get(ctx, "tasks")
	if err != nil || !ok || got != `["persisted"]` {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", got, ok, err)
	}
	if filepath.Base(kv2.Path()) != sqliteKVName {
		t.Fatalf("unexpected sqlite path %q", kv2.Path())
	}
}

func TestFileKV_KeepsOtherKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv, err := OpenFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = kv.Set(ctx, "other", "x")
	_ = kv.Set(ctx, "tasks", "[]")
	if v, ok, _ := kv.Get(ctx, "other"); !ok || v != "x" {
		t.Fatalf("expected other key to survive, got %q ok=%v", v, ok)
	}
}

func TestFileKV_RecoversFromCorruptFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileKVName), []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	kv, err := OpenFileKV(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok, err := kv.Get(ctx, "tasks"); !errors.Is(err, ErrCorrupt) || ok {
		t.Fatalf("expected ErrCorrupt and absent, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "tasks", `["x"]`); err != nil {
		t.Fatalf("set over corrupt file: %v", err)
	}
	if err := kv.Set(ctx, "tasks", `["x","y"]`); err != nil {
		t.Fatalf("second set: %v", err)
	}
	if v, ok, err := kv.Get(ctx, "tasks"); err != nil || !ok || v != `["x","y"]` {
		t.Fatalf("expected recovered value, got %q ok=%v err=%v", v, ok, err)
	}
	b, err := os.ReadFile(filepath.Join(dir, fileKVCorrupt))
	if err != nil || string(b) != "{nope" {
		t.Fatalf("expected damaged file kept aside, got %q err=%v", b, err)
	}
}

func TestParseBackend(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{in: "", want: BackendFile},
		{in: "SQLite", want: BackendSQLite},
		{in: " memory ", want: BackendMemory},
		{in: "redis", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Fatalf("ParseBackend(%q): expected ErrUnknownBackend, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseBackend(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
