// internal/state/enums.go
package state

// ProtectionState is the device protection status reported as a
// single byte index.
type ProtectionState uint8

const (
	ProtectionNormal ProtectionState = iota
	ProtectionOverVoltage
	ProtectionOverCurrent
	ProtectionOverPower
	ProtectionOverTemperature
	ProtectionLowVoltage
	ProtectionReversed
)

// ProtectionFromByte decodes a protection index. Out-of-range values
// clamp to Normal rather than failing the packet.
func ProtectionFromByte(b byte) ProtectionState {
	if b > byte(ProtectionReversed) {
		return ProtectionNormal
	}
	return ProtectionState(b)
}

func (p ProtectionState) String() string {
	switch p {
	case ProtectionOverVoltage:
		return "OVP"
	case ProtectionOverCurrent:
		return "OCP"
	case ProtectionOverPower:
		return "OPP"
	case ProtectionOverTemperature:
		return "OTP"
	case ProtectionLowVoltage:
		return "LVP"
	case ProtectionReversed:
		return "REP"
	default:
		return "normal"
	}
}

// Mode is the regulation mode of the output stage.
type Mode uint8

const (
	ModeCC Mode = iota // constant current
	ModeCV             // constant voltage
)

// ModeFromByte decodes the mode byte: 0 is CC, anything else CV.
func ModeFromByte(b byte) Mode {
	if b == 0 {
		return ModeCC
	}
	return ModeCV
}

func (m Mode) String() string {
	if m == ModeCC {
		return "CC"
	}
	return "CV"
}
