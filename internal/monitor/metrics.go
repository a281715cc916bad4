// internal/monitor/metrics.go
package monitor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// BytesReceived counts raw bytes pulled off the serial link.
	BytesReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dps150_bytes_received_total",
		Help: "Raw bytes received from the device.",
	})

	// FramesDecoded counts frames that passed checksum verification.
	FramesDecoded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dps150_frames_decoded_total",
		Help: "Frames decoded and applied.",
	})

	// FramesDropped counts frames discarded by the decode path.
	FramesDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dps150_frames_dropped_total",
			Help: "Frames dropped before applying.",
		},
		[]string{"reason"},
	)

	// CommandsSent counts outbound frames.
	CommandsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dps150_commands_sent_total",
		Help: "Frames transmitted to the device.",
	})

	// Polls counts all-state queries issued.
	Polls = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dps150_polls_total",
		Help: "Full-state requests issued.",
	})
)

func init() {
	prometheus.MustRegister(
		BytesReceived,
		FramesDecoded,
		FramesDropped,
		CommandsSent,
		Polls,
	)
}

// Handler exposes the registered metrics over HTTP.
func Handler() http.Handler {
	return promhttp.Handler()
}
