package web

import (
	"sync"
	"time"
)

// SwapState tracks the fade transition used when the visible week changes.
type SwapState int

const (
	SwapIdle SwapState = iota
	SwapFadingOut
	SwapContentSwapped
	SwapFadingIn
)

// Timer abstracts delayed execution so transitions are testable without
// wall-clock waits.
type Timer interface {
	AfterFunc(d time.Duration, f func())
}

// WallClockTimer is the production Timer.
type WallClockTimer struct{}

func (WallClockTimer) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Swapper sequences content swaps through an explicit state machine:
// Idle → FadingOut → ContentSwapped → FadingIn → Idle. The delay is
// purely cosmetic. A newer request supersedes any in-flight one, so
// rapid toggles resolve with the last swap winning.
type Swapper struct {
	mu    sync.Mutex
	state SwapState
	delay time.Duration
	timer Timer
	seq   uint64
}

// NewSwapper builds a swapper with the given fade delay.
func NewSwapper(delay time.Duration, timer Timer) *Swapper {
	if timer == nil {
		timer = WallClockTimer{}
	}
	return &Swapper{delay: delay, timer: timer}
}

// Request schedules apply to run after the fade-out completes.
func (s *Swapper) Request(apply func()) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.state = SwapFadingOut
	s.mu.Unlock()

	s.timer.AfterFunc(s.delay, func() {
		s.mu.Lock()
		if seq != s.seq {
			s.mu.Unlock()
			return
		}
		s.state = SwapContentSwapped
		s.mu.Unlock()

		apply()

		s.mu.Lock()
		if seq != s.seq {
			s.mu.Unlock()
			return
		}
		s.state = SwapFadingIn
		s.mu.Unlock()

		s.timer.AfterFunc(s.delay, func() {
			s.mu.Lock()
			if seq == s.seq {
				s.state = SwapIdle
			}
			s.mu.Unlock()
		})
	})
}

// State returns the current transition state.
func (s *Swapper) State() SwapState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FadeClass returns the CSS class applied to the list container while
// the old content is invisible.
func (s *Swapper) FadeClass() string {
	switch s.State() {
	case SwapFadingOut, SwapContentSwapped:
		return "is-fading"
	default:
		return ""
	}
}
