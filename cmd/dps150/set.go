// cmd/dps150/set.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/powerlab/dps150/internal/session"
)

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Write one device setting",
		Long: `Write one device setting. Fields:

  voltage, current            live set-points (float)
  ovp, ocp, opp, otp, lvp     protection thresholds (float)
  brightness, volume          0-10 (int)
  metering                    on|off`,
		Args: cobra.ExactArgs(2),
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

			return applySet(sess, args[0], args[1])
		},
	}
	return cmd
}

func applySet(sess *session.Session, field, value string) error {
	switch field {
	case "voltage", "current", "ovp", "ocp", "opp", "otp", "lvp":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s wants a number: %w", field, err)
		}
		switch field {
		case "voltage":
			return sess.SetVoltage(v)
		case "current":
			return sess.SetCurrent(v)
		case "ovp":
			return sess.SetOverVoltageProtection(v)
		case "ocp":
			return sess.SetOverCurrentProtection(v)
		case "opp":
			return sess.SetOverPowerProtection(v)
		case "otp":
			return sess.SetOverTemperatureProtection(v)
		case "lvp":
			return sess.SetLowVoltageProtection(v)
		}
		return nil

	case "brightness", "volume":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants an integer: %w", field, err)
		}
		if field == "brightness" {
			return sess.SetBrightness(n)
		}
		return sess.SetVolume(n)

	case "metering":
		on, err := parseOnOff(value)
		if err != nil {
			return err
		}
		return sess.SetMeteringEnabled(on)

	default:
		return fmt.Errorf("unknown field %q", field)
	}
}

func outputCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "output on|off",
		Short: "Switch the output stage",
		Args:  cobra.ExactArgs(1),
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

			on, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			return sess.SetOutputEnabled(on)
		},
	}
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	default:
		return false, fmt.Errorf("want on or off, got %q", s)
	}
}
