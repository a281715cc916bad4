// internal/state/snapshot.go
package state

// GroupCount is the number of preset groups on the device.
const GroupCount = 6

// Group is one stored preset: a voltage/current set-point pair.
type Group struct {
	SetVoltage float64
	SetCurrent float64
}

// Snapshot is the aggregated last-known device state, updated
// field-by-field as frames arrive. Every field defaults to its zero
// value until first observed. It is a plain value type: assignment
// copies it, so readers never alias the session's working copy.
type Snapshot struct {
	// Measurements.
	InputVoltage  float64
	OutputVoltage float64
	OutputCurrent float64
	OutputPower   float64
	Temperature   float64

	// Live set-points.
	SetVoltage float64
	SetCurrent float64

	// Preset groups 1-6 at indices 0-5.
	Groups [GroupCount]Group

	// Protection thresholds.
	OverVoltageProtection     float64
	OverCurrentProtection     float64
	OverPowerProtection       float64
	OverTemperatureProtection float64
	LowVoltageProtection      float64

	// Display and audio, both 0-10.
	Brightness int
	Volume     int

	// Energy metering. MeteringEnabled preserves the device's inverted
	// wire encoding: status byte 0 means metering is running.
	MeteringEnabled bool
	OutputCapacity  float64 // Ah
	OutputEnergy    float64 // Wh

	// Status.
	OutputEnabled bool
	Protection    ProtectionState
	Mode          Mode

	// Limits.
	UpperLimitVoltage float64
	UpperLimitCurrent float64
}

// DeviceInfo is the static identity of the device, populated once
// during session initialization.
type DeviceInfo struct {
	ModelName       string
	HardwareVersion string
	FirmwareVersion string
}
