// internal/session/commands.go
package session

import (
	"context"

	"github.com/powerlab/dps150/internal/monitor"
	"github.com/powerlab/dps150/internal/protocol"
	"github.com/powerlab/dps150/internal/state"
)

// All write operations are fire-and-forget: the protocol carries no
// acknowledgment, so success means "the frame left the transport".
// The device's accepted value shows up in a later snapshot update.

// SetVoltage sets the live voltage set-point in volts.
func (s *Session) SetVoltage(v float64) error {
	return s.send(protocol.CmdSet, protocol.TypeSetVoltage, protocol.FloatToBytes(v))
}

// SetCurrent sets the live current set-point in amperes.
func (s *Session) SetCurrent(v float64) error {
	return s.send(protocol.CmdSet, protocol.TypeSetCurrent, protocol.FloatToBytes(v))
}

// SetOutputEnabled switches the output stage on or off.
func (s *Session) SetOutputEnabled(on bool) error {
	return s.send(protocol.CmdSet, protocol.TypeOutputEnable, []byte{boolByte(on)})
}

// SetOverVoltageProtection sets the OVP threshold in volts.
func (s *Session) SetOverVoltageProtection(v float64) error {
	return s.send(protocol.CmdSet, protocol.TypeOVP, protocol.FloatToBytes(v))
}

// SetOverCurrentProtection sets the OCP threshold in amperes.
func (s *Session) SetOverCurrentProtection(v float64) error {
	return s.send(protocol.CmdSet, protocol.TypeOCP, protocol.FloatToBytes(v))
}

// SetOverPowerProtection sets the OPP threshold in watts.
func (s *Session) SetOverPowerProtection(v float64) error {
	return s.send(protocol.CmdSet, protocol.TypeOPP, protocol.FloatToBytes(v))
}

// SetOverTemperatureProtection sets the OTP threshold in °C.
func (s *Session) SetOverTemperatureProtection(v float64) error {
	return s.send(protocol.CmdSet, protocol.TypeOTP, protocol.FloatToBytes(v))
}

// SetLowVoltageProtection sets the LVP threshold in volts.
func (s *Session) SetLowVoltageProtection(v float64) error {
	return s.send(protocol.CmdSet, protocol.TypeLVP, protocol.FloatToBytes(v))
}

// SetBrightness sets the display brightness, 0-10.
func (s *Session) SetBrightness(level int) error {
	if level < 0 || level > 10 {
		return &ArgumentError{Field: "brightness", Value: level, Min: 0, Max: 10}
	}
	return s.send(protocol.CmdSet, protocol.TypeBrightness, []byte{byte(level)})
}

// SetVolume sets the beep volume, 0-10.
func (s *Session) SetVolume(level int) error {
	if level < 0 || level > 10 {
		return &ArgumentError{Field: "volume", Value: level, Min: 0, Max: 10}
	}
	return s.send(protocol.CmdSet, protocol.TypeVolume, []byte{byte(level)})
}

// SetMeteringEnabled starts or stops energy metering. The write byte
// follows the device firmware (1 starts), even though the status byte
// reports the inverse; see state.Snapshot.MeteringEnabled.
func (s *Session) SetMeteringEnabled(on bool) error {
	return s.send(protocol.CmdSet, protocol.TypeMeteringEnable, []byte{boolByte(on)})
}

// SetGroup stores a preset group's voltage/current pair. The live
// set-points are written first, then the group slots, so a reader
// observing mid-sequence state sees the live values update first.
func (s *Session) SetGroup(group int, voltage, current float64) error {
	if group < 1 || group > state.GroupCount {
		return &ArgumentError{Field: "group", Value: group, Min: 1, Max: state.GroupCount}
	}

	if err := s.SetVoltage(voltage); err != nil {
		return err
	}
	if err := s.SetCurrent(current); err != nil {
		return err
	}

	voltageType := byte(protocol.TypeGroup1Voltage + 2*(group-1))
	currentType := byte(protocol.TypeGroup1Current + 2*(group-1))
	if err := s.send(protocol.CmdSet, voltageType, protocol.FloatToBytes(voltage)); err != nil {
		return err
	}
	return s.send(protocol.CmdSet, currentType, protocol.FloatToBytes(current))
}

// LoadGroup re-reads device state and applies the stored preset
// group's pair as the live set-points.
func (s *Session) LoadGroup(ctx context.Context, group int) error {
	if group < 1 || group > state.GroupCount {
		return &ArgumentError{Field: "group", Value: group, Min: 1, Max: state.GroupCount}
	}

	snap, err := s.FetchState(ctx)
	if err != nil {
		return err
	}

	g := snap.Groups[group-1]
	if err := s.SetVoltage(g.SetVoltage); err != nil {
		return err
	}
	return s.SetCurrent(g.SetCurrent)
}

// RequestFullState sends the all-state query. It does not return fresh
// data; the response correlates only by type code, so callers either
// subscribe or use FetchState.
func (s *Session) RequestFullState() error {
	if err := s.send(protocol.CmdGet, protocol.TypeAll, nil); err != nil {
		return err
	}
	monitor.Polls.Inc()
	return nil
}

// FetchState sends the all-state query and waits for the next
// all-state frame. The wire protocol has no request tokens; accepting
// the next composite frame before the ctx deadline is a driver-side
// policy, not protocol behavior.
func (s *Session) FetchState(ctx context.Context) (state.Snapshot, error) {
	ch := make(chan state.Snapshot, 1)
	s.mu.Lock()
	s.fetchWaiters = append(s.fetchWaiters, ch)
	s.mu.Unlock()

	if err := s.RequestFullState(); err != nil {
		s.dropWaiter(ch)
		return state.Snapshot{}, err
	}

	select {
	case snap := <-ch:
		return snap, nil
	case <-ctx.Done():
		s.dropWaiter(ch)
		return state.Snapshot{}, ctx.Err()
	}
}

func (s *Session) dropWaiter(ch chan state.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.fetchWaiters {
		if w == ch {
			s.fetchWaiters = append(s.fetchWaiters[:i], s.fetchWaiters[i+1:]...)
			return
		}
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
