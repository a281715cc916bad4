// cmd/dps150/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/powerlab/dps150/internal/config"
	"github.com/powerlab/dps150/internal/monitor"
	"github.com/powerlab/dps150/internal/session"
	"github.com/powerlab/dps150/internal/transport"
)

var (
	flagConfig string
	flagPort   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "dps150",
		Short:         "Control and monitor a DPS-150 power supply over serial",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "yaml config file")
	rootCmd.PersistentFlags().StringVarP(&flagPort, "port", "p", "", "serial port (overrides config)")

	rootCmd.AddCommand(
		watchCmd(),
		infoCmd(),
		setCmd(),
		outputCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the optional config file with command-line flags.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if flagConfig != "" {
		c, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		cfg = &config.Config{}
	}

	if flagPort != "" {
		cfg.DPS150.Port = flagPort
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)
	return cfg, nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// connect opens the serial port and brings the session up.
func connect(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*session.Session, error) {
	tr, err := transport.Open(transport.Config{
		Port:        cfg.DPS150.Port,
		BaudRate:    cfg.DPS150.BaudRate,
		ReadTimeout: time.Duration(cfg.DPS150.ReadTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	sess := session.New(
		session.WithLogger(log),
		session.WithBaudRate(cfg.DPS150.BaudRate),
		session.WithPollInterval(time.Duration(cfg.DPS150.Poll.IntervalMs)*time.Millisecond),
		session.WithSettleDelay(time.Duration(cfg.DPS150.Settle.WriteMs)*time.Millisecond),
		session.WithInitSettle(time.Duration(cfg.DPS150.Settle.InitMs)*time.Millisecond),
	)
	if err := sess.Connect(ctx, tr); err != nil {
		tr.Close()
		return nil, err
	}
	return sess, nil
}

// serveMetrics starts the prometheus endpoint when monitoring is on.
func serveMetrics(cfg *config.Config, log *logrus.Logger) {
	if !cfg.DPS150.Monitor.Enabled {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", monitor.Handler())
	go func() {
		log.WithField("addr", cfg.DPS150.Monitor.MetricsAddr).Info("metrics listening")
		if err := http.ListenAndServe(cfg.DPS150.Monitor.MetricsAddr, mux); err != nil {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
