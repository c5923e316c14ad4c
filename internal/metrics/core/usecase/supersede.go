package usecase

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded marks a result whose request was replaced by a newer one for
// the same view. It is not a user-facing error.
var ErrSuperseded = errors.New("request superseded")

const (
	DefaultMaxViews = 10000
	DefaultViewTTL  = 30 * time.Minute
)

// Supersede tracks one in-flight request per view key. Starting a request
// cancels the previous one, and only the most recently started request may
// commit its value (last request wins, not last response).
//
// Idle views expire after the TTL, and at most maxViews idle views are kept.
// Views with a request in flight are never evicted.
type Supersede[T any] struct {
	mu       sync.Mutex
	views    map[string]*viewSlot[T]
	maxViews int
	ttl      time.Duration
	now      func() time.Time
}

type viewSlot[T any] struct {
	seq       uint64
	cancel    context.CancelFunc
	committed T
	hasValue  bool
	touched   time.Time
}

type Ticket struct {
	key    string
	seq    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

func (t Ticket) Context() context.Context {
	return t.ctx
}

func NewSupersede[T any]() *Supersede[T] {
	return NewBoundedSupersede[T](DefaultMaxViews, DefaultViewTTL)
}

func NewBoundedSupersede[T any](maxViews int, ttl time.Duration) *Supersede[T] {
	if maxViews < 1 {
		maxViews = 1
	}
	return &Supersede[T]{
		views:    make(map[string]*viewSlot[T]),
		maxViews: maxViews,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Begin cancels whatever is in flight for key and returns a ticket whose
// context is cancelled by the next Begin on the same key.
func (s *Supersede[T]) Begin(parent context.Context, key string) Ticket {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	slot, ok := s.views[key]
	if !ok {
		if len(s.views) >= s.maxViews {
			s.evictLocked(now)
		}
		slot = &viewSlot[T]{}
		s.views[key] = slot
	}
	if slot.cancel != nil {
		slot.cancel()
	}
	slot.seq++
	slot.cancel = cancel
	slot.touched = now

	return Ticket{key: key, seq: slot.seq, ctx: ctx, cancel: cancel}
}

// Commit stores v as the visible value for the ticket's view, unless a newer
// request has started or the ticket's context is done.
func (s *Supersede[T]) Commit(t Ticket, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.views[t.key]
	if !ok || slot.seq != t.seq || t.ctx.Err() != nil {
		return ErrSuperseded
	}
	slot.committed = v
	slot.hasValue = true
	return nil
}

// Done releases the ticket's context.
func (s *Supersede[T]) Done(t Ticket) {
	s.mu.Lock()
	if slot, ok := s.views[t.key]; ok && slot.seq == t.seq {
		slot.cancel = nil
		slot.touched = s.now()
	}
	s.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
}

// Latest returns the last committed value for key.
func (s *Supersede[T]) Latest(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	slot, ok := s.views[key]
	if !ok || !slot.hasValue {
		return zero, false
	}
	return slot.committed, true
}

// Len reports how many views are tracked.
func (s *Supersede[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// evictLocked drops expired idle views, then the least recently used idle
// views until there is room for one more.
func (s *Supersede[T]) evictLocked(now time.Time) {
	for key, slot := range s.views {
		if slot.cancel == nil && s.ttl > 0 && now.Sub(slot.touched) > s.ttl {
			delete(s.views, key)
		}
	}
	for len(s.views) >= s.maxViews {
		var oldest string
		var oldestAt time.Time
		found := false
		for key, slot := range s.views {
			if slot.cancel != nil {
				continue
			}
			if !found || slot.touched.Before(oldestAt) {
				oldest, oldestAt, found = key, slot.touched, true
			}
		}
		if !found {
			return
		}
		delete(s.views, oldest)
	}
}
