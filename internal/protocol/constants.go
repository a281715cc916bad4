// internal/protocol/constants.go
package protocol

// Frame structure constants.
// These values define the wire protocol and MUST NOT be configurable.
const (
	// HeaderIn marks frames received from the device.
	HeaderIn = 0xF0

	// HeaderOut marks frames sent to the device.
	HeaderOut = 0xF1

	// MinFrameSize is the smallest possible frame:
	// header(1) + command(1) + type(1) + length(1) + checksum(1).
	MinFrameSize = 5

	// MaxPayloadSize is the largest payload a single frame can carry.
	// The length field is one byte.
	MaxPayloadSize = 255
)

// Command codes.
const (
	// CmdGet requests a value. Payload is empty.
	CmdGet = 0xA1

	// CmdBaudRate selects the link baud rate by 1-based option index.
	CmdBaudRate = 0xB0

	// CmdSet writes a value. Payload is the encoded value.
	CmdSet = 0xB1

	// CmdSession announces connect (payload [1]) or disconnect (payload [0]).
	CmdSession = 0xC1
)

// Type codes for float values (4-byte little-endian IEEE 754 payloads).
const (
	TypeInputVoltage = 192
	TypeSetVoltage   = 193
	TypeSetCurrent   = 194

	// TypeOutputVCP carries output voltage, current and power
	// back to back (12 bytes).
	TypeOutputVCP = 195

	TypeTemperature = 196

	// Group preset pairs. Group n (1-6) voltage is
	// TypeGroup1Voltage + (n-1)*2, current one above it.
	TypeGroup1Voltage = 197
	TypeGroup1Current = 198
	TypeGroup6Voltage = 207
	TypeGroup6Current = 208

	// Protection thresholds.
	TypeOVP = 209
	TypeOCP = 210
	TypeOPP = 211
	TypeOTP = 212
	TypeLVP = 213

	TypeOutputCapacity = 217 // Ah
	TypeOutputEnergy   = 218 // Wh

	TypeUpperLimitVoltage = 226
	TypeUpperLimitCurrent = 227
)

// Type codes for single-byte values.
const (
	TypeBrightness      = 214 // 0-10
	TypeVolume          = 215 // 0-10
	TypeMeteringEnable  = 216
	TypeOutputEnable    = 219
	TypeProtectionState = 220 // index 0-6
	TypeMode            = 221 // 0=CC, otherwise CV
)

// Type codes for UTF-8 text values.
const (
	TypeModelName       = 222
	TypeHardwareVersion = 223
	TypeFirmwareVersion = 224
)

// TypeAll is the composite selector: one frame carrying the whole
// device state at fixed payload offsets.
const TypeAll = 255

// BaudRateOptions is the fixed option list for CmdBaudRate.
// The command payload is the 1-based index into this list.
var BaudRateOptions = []int{9600, 19200, 38400, 57600, 115200}

// BaudRateIndex returns the 1-based option index for rate, or 0 if
// rate is not a valid option.
func BaudRateIndex(rate int) byte {
	for i, r := range BaudRateOptions {
		if r == rate {
			return byte(i + 1)
		}
	}
	return 0
}
