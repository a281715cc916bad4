// cmd/dps150/watch.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/powerlab/dps150/internal/state"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream snapshot updates until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg.DPS150.Log.Level)
			serveMetrics(cfg, log)

			ctx, stop := signalContext()
			defer stop()

			sess, err := connect(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer sess.Close()

			sess.Subscribe(func(s state.Snapshot) {
				fmt.Printf("out %6.3fV %6.3fA %7.3fW | set %6.3fV %6.3fA | %s %s temp %.1f°C\n",
					s.OutputVoltage, s.OutputCurrent, s.OutputPower,
					s.SetVoltage, s.SetCurrent,
					s.Mode, onOff(s.OutputEnabled), s.Temperature)
				if s.Protection != state.ProtectionNormal {
					fmt.Printf("!! protection: %s\n", s.Protection)
				}
			})

			<-ctx.Done()
			return nil
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
