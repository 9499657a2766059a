package tracking

import (
	"cmp"
	"slices"
	"sync"
)

// orderedSet is a set of job ids that remembers when each id was added.
type orderedSet struct {
	added map[string]uint64
}

func newOrderedSet() orderedSet {
	return orderedSet{added: make(map[string]uint64)}
}

func (s orderedSet) has(id string) bool {
	_, ok := s.added[id]
	return ok
}

func (s orderedSet) ids() []string {
	ids := make([]string, 0, len(s.added))
	for id := range s.added {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Compare(s.added[a], s.added[b])
	})
	return ids
}

// Tracker holds one session's saved and applied job ids.
// Ids are not checked against the store.
type Tracker struct {
	mu      sync.Mutex
	seq     uint64
	saved   orderedSet
	applied orderedSet
}

func NewTracker() *Tracker {
	return &Tracker{saved: newOrderedSet(), applied: newOrderedSet()}
}

// ToggleSaved flips membership of jobID and returns the new state.
func (t *Tracker) ToggleSaved(jobID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.toggle(t.saved, jobID)
}

// ToggleApplied flips membership of jobID and returns the new state.
func (t *Tracker) ToggleApplied(jobID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.toggle(t.applied, jobID)
}

// MarkApplied adds jobID to the applied set without ever removing it.
// It reports whether the id was newly added.
func (t *Tracker) MarkApplied(jobID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.applied.has(jobID) {
		return false
	}
	t.seq++
	t.applied.added[jobID] = t.seq
	return true
}

func (t *Tracker) IsSaved(jobID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saved.has(jobID)
}

func (t *Tracker) IsApplied(jobID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.applied.has(jobID)
}

// Saved returns saved ids in the order they were saved.
func (t *Tracker) Saved() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saved.ids()
}

// Applied returns applied ids in the order they were applied.
func (t *Tracker) Applied() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.applied.ids()
}

func (t *Tracker) toggle(set orderedSet, jobID string) bool {
	if set.has(jobID) {
		delete(set.added, jobID)
		return false
	}
	t.seq++
	set.added[jobID] = t.seq
	return true
}
