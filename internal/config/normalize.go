// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.DPS150

	if d.BaudRate == 0 {
		d.BaudRate = 115200
	}
	if d.ReadTimeoutMs == 0 {
		d.ReadTimeoutMs = 1000
	}
	if d.Poll.IntervalMs == 0 {
		d.Poll.IntervalMs = 1000
	}
	if d.Settle.WriteMs == 0 {
		d.Settle.WriteMs = 50
	}
	if d.Settle.InitMs == 0 {
		d.Settle.InitMs = 200
	}
	if d.Log.Level == "" {
		d.Log.Level = "info"
	}
	if d.Monitor.Enabled && d.Monitor.MetricsAddr == "" {
		d.Monitor.MetricsAddr = ":9150"
	}
}
