package state

import "sync"

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	DONE
	ERROR
	CANCELLED
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	case CANCELLED:
		return "cancelled"
	}
	return "unknown"
}

// Failure records one identity that could not be rendered.
type Failure struct {
	Sinner   string
	Identity string
	Err      error
}

type State struct {
	Phase     Phase
	Generated int
	Skipped   int
	Failures  []Failure
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Failures = cloneFailures(store.state.Failures)
	return snap
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) RecordGenerated() {
	store.mu.Lock()
	store.state.Generated++
	store.mu.Unlock()
}

func (store *Store) RecordSkipped() {
	store.mu.Lock()
	store.state.Skipped++
	store.mu.Unlock()
}

func (store *Store) RecordFailure(failure Failure) {
	store.mu.Lock()
	store.state.Failures = append(store.state.Failures, failure)
	store.mu.Unlock()
}

func cloneFailures(input []Failure) []Failure {
	if len(input) == 0 {
		return nil
	}
	out := make([]Failure, len(input))
	copy(out, input)
	return out
}
