// internal/config/validate_test.go
package config

import "testing"

// helper to build a config quickly
func deviceConfig(port string, baud int) *Config {
	return &Config{
		DPS150: DeviceConfig{
			Port:     port,
			BaudRate: baud,
		},
	}
}

// ---- tests ----

func TestValidate_MinimalValid(t *testing.T) {
	cfg := deviceConfig("/dev/ttyUSB0", 0)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_AllBaudOptions(t *testing.T) {
	for _, baud := range []int{9600, 19200, 38400, 57600, 115200} {
		cfg := deviceConfig("/dev/ttyUSB0", baud)
		if err := Validate(cfg); err != nil {
			t.Fatalf("baud %d: unexpected error: %v", baud, err)
		}
	}
}

func TestValidate_MissingPort(t *testing.T) {
	cfg := deviceConfig("", 115200)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected port error, got nil")
	}
}

func TestValidate_UnsupportedBaudRate(t *testing.T) {
	for _, baud := range []int{300, 12345, 230400} {
		cfg := deviceConfig("/dev/ttyUSB0", baud)
		if err := Validate(cfg); err == nil {
			t.Fatalf("baud %d: expected error, got nil", baud)
		}
	}
}

func TestValidate_NegativeTimings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"read timeout", func(c *Config) { c.DPS150.ReadTimeoutMs = -1 }},
		{"poll interval", func(c *Config) { c.DPS150.Poll.IntervalMs = -1 }},
		{"settle write", func(c *Config) { c.DPS150.Settle.WriteMs = -1 }},
		{"settle init", func(c *Config) { c.DPS150.Settle.InitMs = -1 }},
	}

	for _, tc := range cases {
		cfg := deviceConfig("/dev/ttyUSB0", 115200)
		tc.mutate(cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestValidate_LogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		cfg := deviceConfig("/dev/ttyUSB0", 0)
		cfg.DPS150.Log.Level = level
		if err := Validate(cfg); err != nil {
			t.Fatalf("level %q: unexpected error: %v", level, err)
		}
	}

	cfg := deviceConfig("/dev/ttyUSB0", 0)
	cfg.DPS150.Log.Level = "verbose"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected log level error, got nil")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := deviceConfig("/dev/ttyUSB0", 0)
	Normalize(cfg)

	d := cfg.DPS150
	if d.BaudRate != 115200 {
		t.Fatalf("baud_rate=%d", d.BaudRate)
	}
	if d.ReadTimeoutMs != 1000 {
		t.Fatalf("read_timeout_ms=%d", d.ReadTimeoutMs)
	}
	if d.Poll.IntervalMs != 1000 {
		t.Fatalf("poll interval_ms=%d", d.Poll.IntervalMs)
	}
	if d.Settle.WriteMs != 50 || d.Settle.InitMs != 200 {
		t.Fatalf("settle=%+v", d.Settle)
	}
	if d.Log.Level != "info" {
		t.Fatalf("log level=%q", d.Log.Level)
	}
	if d.Monitor.MetricsAddr != "" {
		t.Fatalf("metrics_addr=%q without monitor enabled", d.Monitor.MetricsAddr)
	}
}

func TestNormalize_MetricsAddrWhenEnabled(t *testing.T) {
	cfg := deviceConfig("/dev/ttyUSB0", 0)
	cfg.DPS150.Monitor.Enabled = true
	Normalize(cfg)

	if cfg.DPS150.Monitor.MetricsAddr != ":9150" {
		t.Fatalf("metrics_addr=%q", cfg.DPS150.Monitor.MetricsAddr)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := deviceConfig("/dev/ttyUSB0", 9600)
	cfg.DPS150.Poll.IntervalMs = 250
	cfg.DPS150.Log.Level = "debug"
	Normalize(cfg)

	d := cfg.DPS150
	if d.BaudRate != 9600 || d.Poll.IntervalMs != 250 || d.Log.Level != "debug" {
		t.Fatalf("explicit values overwritten: %+v", d)
	}
}
