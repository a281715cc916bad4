// internal/session/session.go
package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/powerlab/dps150/internal/monitor"
	"github.com/powerlab/dps150/internal/protocol"
	"github.com/powerlab/dps150/internal/state"
)

// Transport is the byte-level link the session drives. Send must
// transmit the whole frame; Recv must return within a bounded time,
// reporting n == 0 with a nil error when nothing arrived.
type Transport interface {
	Send([]byte) error
	Recv([]byte) (int, error)
	Close() error
}

// Status is the session lifecycle state.
type Status uint8

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusInitializing
	StatusReady
	StatusDisconnecting
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusInitializing:
		return "initializing"
	case StatusReady:
		return "ready"
	case StatusDisconnecting:
		return "disconnecting"
	default:
		return "disconnected"
	}
}

// Session drives one device over one serial link. It owns the framer
// and codec, serializes outbound writes, decodes the inbound stream
// into snapshot updates, and fans out change notifications.
type Session struct {
	cfg Config
	log *logrus.Logger

	// writeMu serializes encode+transmit: only one frame in flight.
	writeMu sync.Mutex

	// framer is touched only by the read loop.
	framer protocol.Framer

	// mu guards everything below.
	mu           sync.RWMutex
	tr           Transport
	status       Status
	snap         state.Snapshot
	info         state.DeviceInfo
	subs         []func(state.Snapshot)
	fetchWaiters []chan state.Snapshot

	loopCtx context.Context
	cancel  context.CancelFunc
	polling bool
	wg      sync.WaitGroup
}

// New creates a disconnected session.
func New(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session{cfg: cfg, log: cfg.Logger}
}

// Connect acquires the transport, starts the inbound loop and runs the
// device initialization sequence: announce presence, negotiate baud
// rate, request identity strings, request one full snapshot. The
// device never acknowledges, so each step waits a settle delay and
// assumes success.
func (s *Session) Connect(ctx context.Context, tr Transport) error {
	s.mu.Lock()
	if s.status != StatusDisconnected {
		s.mu.Unlock()
		return &ConnectionError{Op: "connect", Err: errAlreadyConnected}
	}
	s.status = StatusConnecting
	s.tr = tr
	s.snap = state.Snapshot{}
	s.info = state.DeviceInfo{}
	s.framer.Reset()

	loopCtx, cancel := context.WithCancel(context.Background())
	s.loopCtx = loopCtx
	s.cancel = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go s.readLoop(loopCtx, tr)

	s.setStatus(StatusInitializing)
	if err := s.initDevice(ctx); err != nil {
		s.teardown(false)
		return err
	}

	s.setStatus(StatusReady)
	s.log.WithField("baud", s.cfg.BaudRate).Info("session ready")

	// Subscribers registered before Connect still get their poll.
	s.startPolling()
	return nil
}

// Close stops the poll task and the inbound loop, best-effort sends
// the disconnect notice, and releases the transport.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.status == StatusDisconnected || s.status == StatusDisconnecting {
		s.mu.Unlock()
		return nil
	}
	s.status = StatusDisconnecting
	s.mu.Unlock()

	s.teardown(true)
	return nil
}

// teardown cancels background tasks and releases the transport.
// A failed disconnect notice is swallowed, not escalated.
func (s *Session) teardown(announce bool) {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.loopCtx = nil
	s.polling = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()

	s.mu.Lock()
	tr := s.tr
	s.tr = nil
	s.status = StatusDisconnected
	s.mu.Unlock()

	if tr != nil {
		if announce {
			if frame, err := protocol.Encode(protocol.CmdSession, 0, []byte{0}); err == nil {
				_ = tr.Send(frame)
			}
		}
		if err := tr.Close(); err != nil {
			s.log.WithError(err).Debug("transport close")
		}
	}
	s.log.Info("session closed")
}

// initDevice runs the fixed initialization command sequence, pacing
// each step with a settle delay.
func (s *Session) initDevice(ctx context.Context) error {
	idx := protocol.BaudRateIndex(s.cfg.BaudRate)
	if idx == 0 {
		return &ArgumentError{Field: "baud rate", Value: s.cfg.BaudRate,
			Min: protocol.BaudRateOptions[0], Max: protocol.BaudRateOptions[len(protocol.BaudRateOptions)-1]}
	}

	// Identity strings take the device noticeably longer to push.
	short := s.cfg.InitSettle
	long := short + short/2

	steps := []struct {
		command  byte
		typeCode byte
		payload  []byte
		settle   time.Duration
	}{
		{protocol.CmdSession, 0, []byte{1}, short},
		{protocol.CmdBaudRate, 0, []byte{idx}, short},
		{protocol.CmdGet, protocol.TypeModelName, nil, long},
		{protocol.CmdGet, protocol.TypeHardwareVersion, nil, long},
		{protocol.CmdGet, protocol.TypeFirmwareVersion, nil, long},
		{protocol.CmdGet, protocol.TypeAll, nil, short},
	}

	for _, st := range steps {
		if err := s.send(st.command, st.typeCode, st.payload); err != nil {
			return err
		}
		if err := sleep(ctx, st.settle); err != nil {
			return err
		}
	}
	return nil
}

// send encodes one frame and transmits it under the write lock, then
// holds the lock through the settle delay so back-to-back commands
// keep their device-side spacing.
func (s *Session) send(command, typeCode byte, payload []byte) error {
	frame, err := protocol.Encode(command, typeCode, payload)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	tr := s.tr
	s.mu.RUnlock()
	if tr == nil {
		return &ConnectionError{Op: "send"}
	}

	if err := tr.Send(frame); err != nil {
		return &ConnectionError{Op: "send", Err: err}
	}
	monitor.CommandsSent.Inc()

	if s.cfg.SettleDelay > 0 {
		time.Sleep(s.cfg.SettleDelay)
	}
	return nil
}

func (s *Session) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns a copy of the current device state.
func (s *Session) Snapshot() state.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Info returns a copy of the device identity strings.
func (s *Session) Info() state.DeviceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Protection returns a ProtectionError if the device currently reports
// a non-normal protection state, nil otherwise.
func (s *Session) Protection() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap.Protection == state.ProtectionNormal {
		return nil
	}
	return &ProtectionError{State: s.snap.Protection}
}

// sleep waits d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
