package usecase

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPersistenceScheduler(t *testing.T) {
	t.Run("burst collapses to the last task", func(t *testing.T) {
		s := NewPersistenceScheduler()
		defer s.Stop()

		var calls atomic.Int32
		var last atomic.Int32
		done := make(chan struct{}, 1)
		for i := 1; i <= 5; i++ {
			i := i
			s.Schedule("sess-1", 30*time.Millisecond, func() {
				calls.Add(1)
				last.Store(int32(i))
				done <- struct{}{}
			})
		}

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("task never ran")
		}
		time.Sleep(60 * time.Millisecond)

		if calls.Load() != 1 {
			t.Fatalf("expected 1 call, got %d", calls.Load())
		}
		if last.Load() != 5 {
			t.Fatalf("expected the last task to win, got %d", last.Load())
		}
	})

	t.Run("cancelled task never runs", func(t *testing.T) {
		s := NewPersistenceScheduler()
		defer s.Stop()

		var calls atomic.Int32
		s.Schedule("sess-1", 20*time.Millisecond, func() { calls.Add(1) })
		if !s.Pending("sess-1") {
			t.Fatalf("expected a pending task")
		}
		if !s.Cancel("sess-1") {
			t.Fatalf("expected cancel to find the task")
		}
		time.Sleep(50 * time.Millisecond)

		if calls.Load() != 0 {
			t.Fatalf("expected no calls, got %d", calls.Load())
		}
		if s.Cancel("sess-1") {
			t.Fatalf("second cancel must report nothing pending")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := NewPersistenceScheduler()
		defer s.Stop()

		ran := make(chan string, 2)
		s.Schedule("a", 10*time.Millisecond, func() { ran <- "a" })
		s.Schedule("b", 10*time.Millisecond, func() { ran <- "b" })

		got := map[string]bool{}
		for i := 0; i < 2; i++ {
			select {
			case k := <-ran:
				got[k] = true
			case <-time.After(time.Second):
				t.Fatalf("timed out, got %v", got)
			}
		}
	})

	t.Run("stop cancels and rejects", func(t *testing.T) {
		s := NewPersistenceScheduler()

		var calls atomic.Int32
		s.Schedule("sess-1", 20*time.Millisecond, func() { calls.Add(1) })
		s.Stop()
		s.Schedule("sess-2", time.Millisecond, func() { calls.Add(1) })
		time.Sleep(50 * time.Millisecond)

		if calls.Load() != 0 {
			t.Fatalf("expected no calls after stop, got %d", calls.Load())
		}
	})
}
