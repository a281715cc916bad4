// internal/state/decode.go
package state

import (
	"strings"

	"github.com/powerlab/dps150/internal/protocol"
)

// Decode maps one checksum-verified payload to field updates.
// Pure function: no IO, no side effects, no session state.
//
// Unknown type codes and payloads too short for their type produce no
// updates rather than an error; one bad payload must never abort the
// fields of another.
func Decode(typeCode byte, payload []byte) []Update {
	if len(payload) == 0 {
		return nil
	}

	switch typeCode {
	case protocol.TypeInputVoltage:
		return floatUpdate(FieldInputVoltage, payload)
	case protocol.TypeSetVoltage:
		return floatUpdate(FieldSetVoltage, payload)
	case protocol.TypeSetCurrent:
		return floatUpdate(FieldSetCurrent, payload)
	case protocol.TypeTemperature:
		return floatUpdate(FieldTemperature, payload)
	case protocol.TypeOutputCapacity:
		return floatUpdate(FieldOutputCapacity, payload)
	case protocol.TypeOutputEnergy:
		return floatUpdate(FieldOutputEnergy, payload)
	case protocol.TypeOVP:
		return floatUpdate(FieldOverVoltageProtection, payload)
	case protocol.TypeOCP:
		return floatUpdate(FieldOverCurrentProtection, payload)
	case protocol.TypeOPP:
		return floatUpdate(FieldOverPowerProtection, payload)
	case protocol.TypeOTP:
		return floatUpdate(FieldOverTemperatureProtection, payload)
	case protocol.TypeLVP:
		return floatUpdate(FieldLowVoltageProtection, payload)
	case protocol.TypeUpperLimitVoltage:
		return floatUpdate(FieldUpperLimitVoltage, payload)
	case protocol.TypeUpperLimitCurrent:
		return floatUpdate(FieldUpperLimitCurrent, payload)

	case protocol.TypeOutputVCP:
		// Three floats back to back: voltage, current, power.
		if len(payload) < 12 {
			return nil
		}
		v, _ := protocol.BytesToFloat(payload[0:4])
		c, _ := protocol.BytesToFloat(payload[4:8])
		p, _ := protocol.BytesToFloat(payload[8:12])
		return []Update{
			{Field: FieldOutputVoltage, Float: v},
			{Field: FieldOutputCurrent, Float: c},
			{Field: FieldOutputPower, Float: p},
		}

	case protocol.TypeBrightness:
		return []Update{{Field: FieldBrightness, Int: int(payload[0])}}
	case protocol.TypeVolume:
		return []Update{{Field: FieldVolume, Int: int(payload[0])}}
	case protocol.TypeMeteringEnable:
		// Inverted on the wire: zero byte means metering is running.
		return []Update{{Field: FieldMeteringEnabled, Bool: payload[0] == 0}}
	case protocol.TypeOutputEnable:
		return []Update{{Field: FieldOutputEnabled, Bool: payload[0] == 1}}
	case protocol.TypeProtectionState:
		return []Update{{Field: FieldProtection, Protection: ProtectionFromByte(payload[0])}}
	case protocol.TypeMode:
		return []Update{{Field: FieldMode, Mode: ModeFromByte(payload[0])}}

	case protocol.TypeModelName:
		return []Update{{Field: FieldModelName, Text: decodeText(payload)}}
	case protocol.TypeHardwareVersion:
		return []Update{{Field: FieldHardwareVersion, Text: decodeText(payload)}}
	case protocol.TypeFirmwareVersion:
		return []Update{{Field: FieldFirmwareVersion, Text: decodeText(payload)}}

	case protocol.TypeAll:
		return decodeAll(payload)
	}

	if typeCode >= protocol.TypeGroup1Voltage && typeCode <= protocol.TypeGroup6Current {
		return floatUpdate(FieldGroup1Voltage+Field(typeCode-protocol.TypeGroup1Voltage), payload)
	}

	return nil
}

// decodeAll unpacks the composite all-state payload. Fields whose
// offsets fall past the end of a truncated payload are simply omitted.
func decodeAll(p []byte) []Update {
	updates := make([]Update, 0, 32)

	addFloat := func(f Field, off int) {
		if v, ok := floatAt(p, off); ok {
			updates = append(updates, Update{Field: f, Float: v})
		}
	}
	addByte := func(off int, mk func(byte) Update) {
		if off < len(p) {
			updates = append(updates, mk(p[off]))
		}
	}

	addFloat(FieldInputVoltage, offInputVoltage)
	addFloat(FieldSetVoltage, offSetVoltage)
	addFloat(FieldSetCurrent, offSetCurrent)
	addFloat(FieldOutputVoltage, offOutputVoltage)
	addFloat(FieldOutputCurrent, offOutputCurrent)
	addFloat(FieldOutputPower, offOutputPower)
	addFloat(FieldTemperature, offTemperature)

	for n := 1; n <= GroupCount; n++ {
		base := offGroupBase + 8*(n-1)
		addFloat(GroupVoltageField(n), base)
		addFloat(GroupCurrentField(n), base+4)
	}

	addFloat(FieldOverVoltageProtection, offOVP)
	addFloat(FieldOverCurrentProtection, offOCP)
	addFloat(FieldOverPowerProtection, offOPP)
	addFloat(FieldOverTemperatureProtection, offOTP)
	addFloat(FieldLowVoltageProtection, offLVP)

	addByte(offBrightness, func(b byte) Update { return Update{Field: FieldBrightness, Int: int(b)} })
	addByte(offVolume, func(b byte) Update { return Update{Field: FieldVolume, Int: int(b)} })
	addByte(offMetering, func(b byte) Update { return Update{Field: FieldMeteringEnabled, Bool: b == 0} })

	addFloat(FieldOutputCapacity, offOutputCapacity)
	addFloat(FieldOutputEnergy, offOutputEnergy)

	addByte(offOutputEnabled, func(b byte) Update { return Update{Field: FieldOutputEnabled, Bool: b == 1} })
	addByte(offProtection, func(b byte) Update { return Update{Field: FieldProtection, Protection: ProtectionFromByte(b)} })
	addByte(offMode, func(b byte) Update { return Update{Field: FieldMode, Mode: ModeFromByte(b)} })

	addFloat(FieldUpperLimitVoltage, offUpperLimitVoltage)
	addFloat(FieldUpperLimitCurrent, offUpperLimitCurrent)

	return updates
}

func floatUpdate(f Field, payload []byte) []Update {
	v, err := protocol.BytesToFloat(payload)
	if err != nil {
		return nil
	}
	return []Update{{Field: f, Float: v}}
}

func floatAt(p []byte, off int) (float64, bool) {
	if off+4 > len(p) {
		return 0, false
	}
	v, err := protocol.BytesToFloat(p[off : off+4])
	if err != nil {
		return 0, false
	}
	return v, true
}

// decodeText trims NUL padding and whitespace. Invalid UTF-8 sequences
// are dropped rather than failing the field.
func decodeText(p []byte) string {
	s := strings.ToValidUTF8(string(p), "")
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
