// Package safe_close coordinates the shutdown of long-running goroutines.
// Attached functions receive a close signal channel and report completion
// through done; SendCloseSignal broadcasts the signal exactly once.
package safe_close

import "sync"

type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done when it has
// finished cleaning up and must return once closeSignal is closed.
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go f(s.wg.Done, s.closeSignal)
}

// SendCloseSignal broadcasts the close signal. The first non-nil err wins;
// subsequent calls are no-ops.
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until every attached goroutine has called done, then
// returns the error passed to the first SendCloseSignal.
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
