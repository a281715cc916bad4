// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/powerlab/dps150/internal/protocol"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.DPS150

	// ------------------------------------------------------------
	// SERIAL PORT
	// ------------------------------------------------------------

	if d.Port == "" {
		return fmt.Errorf("dps150: port is required")
	}

	// Baud rate 0 means "default"; anything else must be a protocol
	// option, because initialization announces it by index.
	if d.BaudRate != 0 && protocol.BaudRateIndex(d.BaudRate) == 0 {
		return fmt.Errorf(
			"dps150: baud_rate %d is not supported (options: %v)",
			d.BaudRate,
			protocol.BaudRateOptions,
		)
	}

	if d.ReadTimeoutMs < 0 {
		return fmt.Errorf("dps150: read_timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	if d.Poll.IntervalMs < 0 {
		return fmt.Errorf("dps150: poll interval_ms must be >= 0")
	}

	if d.Settle.WriteMs < 0 {
		return fmt.Errorf("dps150: settle write_ms must be >= 0")
	}

	if d.Settle.InitMs < 0 {
		return fmt.Errorf("dps150: settle init_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// LOG / MONITOR
	// ------------------------------------------------------------

	switch d.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("dps150: unknown log level %q", d.Log.Level)
	}

	return nil
}
