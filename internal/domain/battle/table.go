package battle

import (
	"sync"

	"github.com/Kkzin999/sun/internal/domain/character"
)

// Table holds the live sessions, at most one per character. The table only
// guards its own map; session fields are mutated under the per-character lock.
type Table struct {
	mu       sync.RWMutex
	sessions map[character.Ref]*Session
}

// NewTable creates an empty session table
func NewTable() *Table {
	return &Table{sessions: make(map[character.Ref]*Session)}
}

// Get returns the live session for ref
func (t *Table) Get(ref character.Ref) (*Session, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[ref]
	return s, ok
}

// Put stores s unless its character already has a session
func (t *Table) Put(s *Session) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.sessions[s.Ref()]; exists {
		return false
	}
	t.sessions[s.Ref()] = s
	return true
}

// Remove deletes and returns the session for ref
func (t *Table) Remove(ref character.Ref) (*Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[ref]
	delete(t.sessions, ref)
	return s, ok
}

// InBattle reports whether ref has a live session
func (t *Table) InBattle(ref character.Ref) bool {
	_, ok := t.Get(ref)
	return ok
}

// Refs snapshots the characters currently in battle
func (t *Table) Refs() []character.Ref {
	t.mu.RLock()
	defer t.mu.RUnlock()
	refs := make([]character.Ref, 0, len(t.sessions))
	for ref := range t.sessions {
		refs = append(refs, ref)
	}
	return refs
}

// Len is the number of live sessions
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.sessions)
}
