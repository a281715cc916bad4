// internal/state/offsets.go
package state

// All-state payload layout (wire type 255).
// These offsets define the protocol and MUST NOT be configurable.
// Floats are 4-byte little-endian IEEE 754; the rest are single bytes.

// ---- FLOAT BLOCK ----

const (
	offInputVoltage  = 0
	offSetVoltage    = 4
	offSetCurrent    = 8
	offOutputVoltage = 12
	offOutputCurrent = 16
	offOutputPower   = 20
	offTemperature   = 24

	// Groups 1-6: voltage at offGroupBase + 8*(n-1), current 4 above.
	offGroupBase = 28

	offOVP = 76
	offOCP = 80
	offOPP = 84
	offOTP = 88
	offLVP = 92
)

// ---- BYTE BLOCK ----

const (
	offBrightness = 96
	offVolume     = 97
	offMetering   = 98 // 0 means metering is running (inverted)
)

// ---- ENERGY FLOATS ----

const (
	offOutputCapacity = 99
	offOutputEnergy   = 103
)

// ---- STATUS BYTES ----

const (
	offOutputEnabled = 107
	offProtection    = 108
	offMode          = 109
	// Byte 110 is unused.
)

// ---- LIMIT FLOATS ----

const (
	offUpperLimitVoltage = 111
	offUpperLimitCurrent = 115
)

// AllStateNominalSize is the payload size carrying every field above.
// Shorter payloads are legal: fields past the end stay unchanged.
const AllStateNominalSize = 119
