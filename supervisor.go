package main

import (
	"sync"
	"time"
)

// SessionState is the lifecycle of a supervised capture session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateStarting
	StateListening
	StateRetrying
	StateFailed
	StateStopped
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateListening:
		return "listening"
	case StateRetrying:
		return "retrying"
	case StateFailed:
		return "failed"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 2 * time.Second
)

// Supervisor owns the lifecycle of a keyboard hook: start, restart on
// failure with a bounded retry budget, stop. The budget is per session, not
// per key event; it never replenishes once the session is running.
type Supervisor struct {
	newHook     func() KeyboardHook
	maxAttempts int
	backoff     time.Duration

	mu       sync.Mutex
	state    SessionState
	err      error
	stopping bool

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	status   chan SessionState
}

// NewSupervisor wraps a hook constructor. A fresh hook is built for every
// attempt so a failed one never leaks into the next.
func NewSupervisor(newHook func() KeyboardHook) *Supervisor {
	return &Supervisor{
		newHook:     newHook,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		state:       StateIdle,
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
		status:      make(chan SessionState, 16),
	}
}

// SetRetryPolicy adjusts the retry budget. Must be called before Start.
func (s *Supervisor) SetRetryPolicy(maxAttempts int, backoff time.Duration) {
	if maxAttempts > 0 {
		s.maxAttempts = maxAttempts
	}
	if backoff > 0 {
		s.backoff = backoff
	}
}

// Status reports every state transition. Buffered; the supervisor never
// blocks on a slow reader.
func (s *Supervisor) Status() <-chan SessionState {
	return s.status
}

// State returns the current session state.
func (s *Supervisor) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error that ended the session, if any.
func (s *Supervisor) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed when the session reaches a terminal state.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Start launches the supervised session and returns immediately.
func (s *Supervisor) Start(callback func(KeyPress)) error {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.state = StateStarting
	s.mu.Unlock()

	go s.supervise(callback)
	return nil
}

// Listen runs a supervised session and blocks until it ends. Returns nil
// after a clean Stop, or the error that exhausted the retry budget.
func (s *Supervisor) Listen(callback func(KeyPress)) error {
	if err := s.Start(callback); err != nil {
		return err
	}
	<-s.done
	return s.Err()
}

// Stop ends the session. Safe to call more than once and from any
// goroutine; takes effect within the hook's poll interval.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	s.stopping = true
	s.mu.Unlock()
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *Supervisor) supervise(callback func(KeyPress)) {
	defer close(s.done)

	attempt := 0
	for {
		if s.isStopping() {
			s.transition(StateStopped)
			return
		}

		s.transition(StateStarting)
		attempt++
		log.Infof("starting keyboard capture (attempt %d/%d)", attempt, s.maxAttempts)

		hook := s.newHook()
		if err := hook.Start(callback); err != nil {
			log.Errorf("keyboard capture start failed: %v", err)
			if attempt >= s.maxAttempts {
				s.fail(err)
				return
			}
			if !s.waitBackoff() {
				s.transition(StateStopped)
				return
			}
			continue
		}

		s.transition(StateListening)
		log.Info("keyboard capture running")

		select {
		case <-hook.Done():
			if s.isStopping() {
				s.transition(StateStopped)
				return
			}
			tapRestartsTotal.Inc()
			log.Warn("event tap terminated unexpectedly")
			if attempt >= s.maxAttempts {
				s.fail(ErrRunLoopSource)
				return
			}
			if !s.waitBackoff() {
				s.transition(StateStopped)
				return
			}
		case <-s.stopCh:
			if err := hook.Stop(); err != nil {
				log.Warnf("stopping keyboard hook: %v", err)
			}
			// Bounded wait; Stop is best effort by contract.
			select {
			case <-hook.Done():
			case <-time.After(2 * time.Second):
				log.Warn("tap thread did not exit in time")
			}
			s.transition(StateStopped)
			return
		}
	}
}

// waitBackoff sleeps the configured backoff. Returns false when Stop
// arrived during the wait.
func (s *Supervisor) waitBackoff() bool {
	s.transition(StateRetrying)
	select {
	case <-time.After(s.backoff):
		return true
	case <-s.stopCh:
		return false
	}
}

// fail records the terminal error and reports it exactly once.
func (s *Supervisor) fail(err error) {
	tapFailuresTotal.Inc()
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.transition(StateFailed)
	log.Errorf("keyboard capture failed permanently: %v", err)
	log.Error("grant permission under System Settings > Privacy & Security > Accessibility (and Input Monitoring), then restart the app")
}

func (s *Supervisor) isStopping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopping
}

func (s *Supervisor) transition(st SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	select {
	case s.status <- st:
	default:
	}
}
