// internal/session/options.go
package session

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds session timing and logging knobs. The wire protocol
// itself is not configurable.
type Config struct {
	// PollInterval is the period of the background full-state poll.
	PollInterval time.Duration

	// SettleDelay is the pause after each transmitted frame. The
	// protocol has no acknowledgment; this is the wait that stands in
	// for one.
	SettleDelay time.Duration

	// InitSettle is the base pause between initialization steps.
	// Identity requests wait half again as long.
	InitSettle time.Duration

	// BaudRate is the rate negotiated during initialization. Must be
	// one of protocol.BaudRateOptions.
	BaudRate int

	// Logger receives session logs.
	Logger *logrus.Logger
}

func defaultConfig() Config {
	return Config{
		PollInterval: time.Second,
		SettleDelay:  50 * time.Millisecond,
		InitSettle:   200 * time.Millisecond,
		BaudRate:     115200,
		Logger:       logrus.StandardLogger(),
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithPollInterval sets the background poll period.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.PollInterval = d
		}
	}
}

// WithSettleDelay sets the post-write settle delay.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SettleDelay = d
		}
	}
}

// WithInitSettle sets the base pause between initialization steps.
func WithInitSettle(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.InitSettle = d
		}
	}
}

// WithBaudRate sets the rate announced during initialization.
func WithBaudRate(rate int) Option {
	return func(c *Config) {
		c.BaudRate = rate
	}
}

// WithLogger sets the session logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Config) {
		if log != nil {
			c.Logger = log
		}
	}
}
