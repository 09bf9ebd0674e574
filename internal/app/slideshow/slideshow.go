// Package slideshow models the photo auto-advance as a cancellable repeating
// timer with pause-on-hover. It shares no state with the booking flow.
package slideshow

import (
	"context"
	"sync"
	"time"
)

// Slideshow cycles an index over a fixed number of photos. Advancing starts
// from the second photo, since the first is already on screen.
type Slideshow struct {
	mu       sync.Mutex
	count    int
	next     int
	paused   bool
	interval time.Duration
	onShow   func(idx int)
}

func New(photoCount int, interval time.Duration, onShow func(idx int)) *Slideshow {
	return &Slideshow{
		count:    photoCount,
		next:     1 % max(photoCount, 1),
		interval: interval,
		onShow:   onShow,
	}
}

// Run ticks until the context is cancelled. With fewer than two photos there
// is nothing to cycle and it returns immediately.
func (s *Slideshow) Run(ctx context.Context) {
	if s.count < 2 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Advance()
		}
	}
}

// Advance shows the next photo unless paused.
func (s *Slideshow) Advance() {
	s.mu.Lock()
	if s.paused || s.count < 2 {
		s.mu.Unlock()
		return
	}
	idx := s.next
	s.next = (s.next + 1) % s.count
	show := s.onShow
	s.mu.Unlock()
	if show != nil {
		show(idx)
	}
}

// Select jumps to a photo the user picked; cycling continues from the photo
// after it.
func (s *Slideshow) Select(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx < 0 || idx >= s.count {
		return
	}
	s.next = (idx + 1) % s.count
}

func (s *Slideshow) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = true
}

func (s *Slideshow) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = false
}
