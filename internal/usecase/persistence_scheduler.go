package usecase

import (
	"sync"
	"time"
)

// PersistenceScheduler debounces remote profile writes per session.
//
// Scheduling a key replaces its pending task instead of queueing behind it, so a
// burst of updates collapses into one write. A replaced or cancelled task never runs.
type PersistenceScheduler struct {
	mu      sync.Mutex
	pending map[string]*pendingWrite
	seq     uint64
	stopped bool
	running sync.WaitGroup
}

type pendingWrite struct {
	timer *time.Timer
	gen   uint64
}

func NewPersistenceScheduler() *PersistenceScheduler {
	return &PersistenceScheduler{pending: make(map[string]*pendingWrite)}
}

// Schedule runs task after delay unless key is scheduled again or cancelled first.
func (s *PersistenceScheduler) Schedule(key string, delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	if prev, ok := s.pending[key]; ok {
		prev.timer.Stop()
	}
	s.seq++
	gen := s.seq
	w := &pendingWrite{gen: gen}
	w.timer = time.AfterFunc(delay, func() { s.fire(key, gen, task) })
	s.pending[key] = w
}

func (s *PersistenceScheduler) fire(key string, gen uint64, task func()) {
	s.mu.Lock()
	w, ok := s.pending[key]
	if !ok || w.gen != gen || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.pending, key)
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	task()
}

// Cancel drops the pending task of key and reports whether there was one.
func (s *PersistenceScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.pending[key]
	if !ok {
		return false
	}
	w.timer.Stop()
	delete(s.pending, key)
	return true
}

// Pending reports whether key has a task waiting to run.
func (s *PersistenceScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels every pending task, rejects new ones and waits for tasks that
// already started.
func (s *PersistenceScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for key, w := range s.pending {
		w.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	s.running.Wait()
}
