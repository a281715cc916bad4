// internal/session/loop.go
package session

import (
	"context"
	"errors"

	"github.com/powerlab/dps150/internal/monitor"
	"github.com/powerlab/dps150/internal/protocol"
	"github.com/powerlab/dps150/internal/state"
)

// readBufSize is the per-read chunk buffer. Frames are at most 260
// bytes; this just amortizes syscalls.
const readBufSize = 1024

// readLoop continuously pulls bytes from the transport, feeds the
// framer, decodes complete frames and applies their field updates.
// Frames are processed strictly in arrival order. A malformed frame is
// dropped and logged; it never aborts the loop or the frames after it.
func (s *Session) readLoop(ctx context.Context, tr Transport) {
	defer s.wg.Done()

	buf := make([]byte, readBufSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := tr.Recv(buf)
		if err != nil {
			if ctx.Err() == nil {
				s.log.WithError(err).Error("serial read failed, stopping inbound loop")
			}
			return
		}
		if n == 0 {
			// Quiet timeout; loop to re-check cancellation.
			continue
		}

		monitor.BytesReceived.Add(float64(n))
		s.framer.Feed(buf[:n])

		for _, raw := range s.framer.Extract() {
			_, typeCode, payload, err := protocol.Decode(raw)
			if err != nil {
				monitor.FramesDropped.WithLabelValues(dropReason(err)).Inc()
				s.log.WithError(err).Debug("dropping frame")
				continue
			}
			monitor.FramesDecoded.Inc()
			s.apply(typeCode, payload)
		}
	}
}

// apply decodes the payload into field updates and commits them under
// one lock hold, so readers observe either none or all of a frame's
// updates. Listener fan-out and fetch-waiter wakeups run outside the
// lock on the committed copy.
func (s *Session) apply(typeCode byte, payload []byte) {
	updates := state.Decode(typeCode, payload)
	if len(updates) == 0 {
		return
	}

	s.mu.Lock()
	prevProtection := s.snap.Protection
	for _, u := range updates {
		if u.Field.IsInfo() {
			s.info.ApplyInfo(u)
		} else {
			s.snap.Apply(u)
		}
	}
	snap := s.snap
	subs := append(([]func(state.Snapshot))(nil), s.subs...)

	var waiters []chan state.Snapshot
	if typeCode == protocol.TypeAll {
		waiters = s.fetchWaiters
		s.fetchWaiters = nil
	}
	s.mu.Unlock()

	if snap.Protection != prevProtection && snap.Protection != state.ProtectionNormal {
		s.log.WithField("state", snap.Protection.String()).Warn("protection triggered")
	}

	for _, w := range waiters {
		// Buffered; a waiter that already gave up just never reads it.
		select {
		case w <- snap:
		default:
		}
	}

	s.notify(snap, subs)
}

func dropReason(err error) string {
	var fe *protocol.FrameError
	if errors.As(err, &fe) {
		return "malformed"
	}
	return "other"
}
