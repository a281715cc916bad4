// internal/session/dispatch.go
package session

import (
	"github.com/powerlab/dps150/internal/state"
)

// Subscribe registers a listener invoked with a snapshot copy after
// every frame's field updates are committed, batched per frame. The
// first subscriber starts the background full-state poll.
func (s *Session) Subscribe(fn func(state.Snapshot)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()

	s.startPolling()
}

// notify delivers one committed snapshot to every listener in
// registration order. A panicking listener is contained; it must not
// prevent delivery to the others or reach the inbound loop.
func (s *Session) notify(snap state.Snapshot, subs []func(state.Snapshot)) {
	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.WithField("panic", r).Error("listener panicked")
				}
			}()
			fn(snap)
		}()
	}
}

// startPolling launches the periodic full-state poll. It needs a live
// connection and at least one subscriber, and runs at most one poll
// task per connection.
func (s *Session) startPolling() {
	s.mu.Lock()
	if s.polling || s.loopCtx == nil || len(s.subs) == 0 {
		s.mu.Unlock()
		return
	}
	s.polling = true
	ctx := s.loopCtx
	s.mu.Unlock()

	s.wg.Add(1)
	go s.pollLoop(ctx)
}
