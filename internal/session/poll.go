// internal/session/poll.go
package session

import (
	"context"
	"time"
)

// pollLoop issues the all-state query on a fixed interval. A transient
// send failure just waits out the next tick; the loop only terminates
// with the connection.
func (s *Session) pollLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.RequestFullState(); err != nil {
				s.log.WithError(err).Debug("poll request failed")
			}
		}
	}
}
