// internal/transport/serial.go
package transport

import (
	"errors"
	"time"

	"github.com/goburrow/serial"
)

// Config is minimal port config. Framing is fixed by the device:
// 8 data bits, no parity, 1 stop bit.
type Config struct {
	Port        string
	BaudRate    int
	ReadTimeout time.Duration
}

// Serial adapts a goburrow serial port to the session's Transport
// interface. This adapter is bytes-only: it knows nothing about frames.
type Serial struct {
	port serial.Port
}

// Open opens the serial port. ReadTimeout bounds every Recv so a
// silent device never stalls shutdown.
func Open(cfg Config) (*Serial, error) {
	if cfg.Port == "" {
		return nil, errors.New("transport: port required")
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = time.Second
	}

	p, err := serial.Open(&serial.Config{
		Address:  cfg.Port,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.ReadTimeout,
	})
	if err != nil {
		return nil, err
	}
	return &Serial{port: p}, nil
}

// Send writes one complete frame. The caller serializes Send calls;
// interleaved partial writes would corrupt the device-side parser.
func (s *Serial) Send(b []byte) error {
	for len(b) > 0 {
		n, err := s.port.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// Recv reads whatever bytes are available within the read timeout.
// Returns n == 0 with a nil error when the timeout elapsed quietly;
// callers loop and re-check cancellation.
func (s *Serial) Recv(buf []byte) (int, error) {
	n, err := s.port.Read(buf)
	if err != nil {
		if errors.Is(err, serial.ErrTimeout) {
			return 0, nil
		}
		return n, err
	}
	return n, nil
}

// Close closes the port. Nil-safe.
func (s *Serial) Close() error {
	if s == nil || s.port == nil {
		return nil
	}
	return s.port.Close()
}
