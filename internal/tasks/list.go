// Package tasks holds the task list state and its persistence round-trip.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskdeck/internal/store"

	"github.com/hashicorp/go-hclog"
)

// StorageKey is the fixed key the task list is persisted under.
const StorageKey = "tasks"

// Store is the durable key/value store the list writes through to.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Option configures Load.
type Option func(*List)

// WithLogger sets where load and save events are logged. Nil keeps the null logger.
func WithLogger(log hclog.Logger) Option {
	return func(l *List) {
		if log != nil {
			l.log = log
		}
	}
}

// List is an ordered sequence of task labels plus the in-progress draft.
// Index is identity: Delete(i) removes whatever currently sits at position i.
type List struct {
	store Store
	key   string
	log   hclog.Logger

	items []string
	draft string
}

// Load reads the persisted sequence once. Absent or malformed content yields an empty list;
// malformed content is logged and overwritten by the next mutation.
// A storage read error is returned alongside a usable empty list.
func Load(ctx context.Context, st Store, opts ...Option) (*List, error) {
	l := &List{
		store: st,
		key:   StorageKey,
		log:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}

	raw, ok, err := st.Get(ctx, l.key)
	if errors.Is(err, store.ErrCorrupt) {
		l.log.Warn("ignoring corrupt storage", "key", l.key, "error", err)
		return l, nil
	}
	if err != nil {
		l.log.Error("read task list", "key", l.key, "error", err)
		return l, fmt.Errorf("load tasks: %w", err)
	}
	if !ok {
		l.log.Debug("no persisted task list", "key", l.key)
		return l, nil
	}
	items, err := Decode(raw)
	if err != nil {
		l.log.Warn("ignoring malformed task list", "key", l.key, "error", err)
		return l, nil
	}
	l.items = items
	l.log.Debug("loaded task list", "key", l.key, "count", len(items))
	return l, nil
}

// Tasks returns a copy of the current sequence.
func (l *List) Tasks() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int { return len(l.items) }

func (l *List) Draft() string { return l.draft }

// SetDraft replaces the draft verbatim.
func (l *List) SetDraft(text string) { l.draft = text }

// Add appends the untrimmed draft and clears it. A blank draft is a no-op.
// The in-memory append stands even when the write fails.
func (l *List) Add(ctx context.Context) (bool, error) {
	if strings.TrimSpace(l.draft) == "" {
		return false, nil
	}
	l.items = append(l.items, l.draft)
	l.draft = ""
	return true, l.persist(ctx)
}

// Delete removes the task at index. Out-of-range indexes are ignored.
func (l *List) Delete(ctx context.Context, index int) (bool, error) {
	if index < 0 || index >= len(l.items) {
		return false, nil
	}
	l.items = append(l.items[:index:index], l.items[index+1:]...)
	return true, l.persist(ctx)
}

func (l *List) persist(ctx context.Context) error {
	raw, err := Encode(l.items)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, l.key, raw); err != nil {
		l.log.Error("write task list", "key", l.key, "error", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	l.log.Debug("saved task list", "key", l.key, "count", len(l.items))
	return nil
}
