// cmd/dps150/info.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print device identity and a one-shot state snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg.DPS150.Log.Level)

			ctx, stop := signalContext()
			defer stop()

			sess, err := connect(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer sess.Close()

			snap, err := sess.FetchState(ctx)
			if err != nil {
				return err
			}
			info := sess.Info()

			fmt.Printf("model:    %s\n", info.ModelName)
			fmt.Printf("hardware: %s\n", info.HardwareVersion)
			fmt.Printf("firmware: %s\n", info.FirmwareVersion)
			fmt.Printf("input:    %.3f V\n", snap.InputVoltage)
			fmt.Printf("output:   %.3f V  %.3f A  %.3f W (%s, %s)\n",
				snap.OutputVoltage, snap.OutputCurrent, snap.OutputPower,
				snap.Mode, onOff(snap.OutputEnabled))
			fmt.Printf("limits:   %.2f V  %.2f A\n", snap.UpperLimitVoltage, snap.UpperLimitCurrent)
			for i, g := range snap.Groups {
				fmt.Printf("group %d:  %.3f V  %.3f A\n", i+1, g.SetVoltage, g.SetCurrent)
			}
			return nil
		},
	}
}
