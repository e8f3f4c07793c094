package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyListeners are page-wide key subscriptions, the terminal analogue of a document
// keydown listener. A component subscribes while mounted and cancels on teardown.
type keyListeners struct {
	nextID int
	subs   []keySub
}

type keySub struct {
	id      int
	binding key.Binding
	fire    func() tea.Msg
}

func newKeyListeners() *keyListeners { return &keyListeners{} }

// Subscribe registers fire for binding. The returned cancel is safe to call more than once.
func (l *keyListeners) Subscribe(binding key.Binding, fire func() tea.Msg) (cancel func()) {
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, keySub{id: id, binding: binding, fire: fire})
	return func() { l.remove(id) }
}

func (l *keyListeners) remove(id int) {
	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			return
		}
	}
}

// Dispatch fires every subscription matching k, in subscription order.
func (l *keyListeners) Dispatch(k tea.KeyMsg) []tea.Msg {
	var out []tea.Msg
	// Snapshot: a fired listener may cancel itself.
	subs := append([]keySub(nil), l.subs...)
	for _, s := range subs {
		if !key.Matches(k, s.binding) {
			continue
		}
		if msg := s.fire(); msg != nil {
			out = append(out, msg)
		}
	}
	return out
}

func (l *keyListeners) Len() int { return len(l.subs) }
