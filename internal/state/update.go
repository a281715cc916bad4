// internal/state/update.go
package state

// Field identifies one snapshot or device-info field.
type Field uint8

const (
	FieldInputVoltage Field = iota
	FieldOutputVoltage
	FieldOutputCurrent
	FieldOutputPower
	FieldTemperature
	FieldSetVoltage
	FieldSetCurrent

	// Group fields: FieldGroup1Voltage + 2*(n-1) for group n's voltage,
	// one above it for the current. Kept adjacent so the offset math
	// mirrors the wire type codes.
	FieldGroup1Voltage
	FieldGroup1Current
	FieldGroup2Voltage
	FieldGroup2Current
	FieldGroup3Voltage
	FieldGroup3Current
	FieldGroup4Voltage
	FieldGroup4Current
	FieldGroup5Voltage
	FieldGroup5Current
	FieldGroup6Voltage
	FieldGroup6Current

	FieldOverVoltageProtection
	FieldOverCurrentProtection
	FieldOverPowerProtection
	FieldOverTemperatureProtection
	FieldLowVoltageProtection

	FieldBrightness
	FieldVolume
	FieldMeteringEnabled
	FieldOutputCapacity
	FieldOutputEnergy
	FieldOutputEnabled
	FieldProtection
	FieldMode
	FieldUpperLimitVoltage
	FieldUpperLimitCurrent

	FieldModelName
	FieldHardwareVersion
	FieldFirmwareVersion
)

// IsInfo reports whether the field belongs to DeviceInfo rather than
// the Snapshot.
func (f Field) IsInfo() bool {
	return f == FieldModelName || f == FieldHardwareVersion || f == FieldFirmwareVersion
}

// Update is one decoded field value. Exactly one of the value members
// is meaningful, selected by Field.
type Update struct {
	Field Field

	Float float64
	Int   int
	Bool  bool
	Text  string

	Protection ProtectionState
	Mode       Mode
}

// Apply writes one update into the snapshot. Info fields are ignored
// here; they are routed to ApplyInfo by the caller.
func (s *Snapshot) Apply(u Update) {
	switch u.Field {
	case FieldInputVoltage:
		s.InputVoltage = u.Float
	case FieldOutputVoltage:
		s.OutputVoltage = u.Float
	case FieldOutputCurrent:
		s.OutputCurrent = u.Float
	case FieldOutputPower:
		s.OutputPower = u.Float
	case FieldTemperature:
		s.Temperature = u.Float
	case FieldSetVoltage:
		s.SetVoltage = u.Float
	case FieldSetCurrent:
		s.SetCurrent = u.Float

	case FieldGroup1Voltage, FieldGroup1Current,
		FieldGroup2Voltage, FieldGroup2Current,
		FieldGroup3Voltage, FieldGroup3Current,
		FieldGroup4Voltage, FieldGroup4Current,
		FieldGroup5Voltage, FieldGroup5Current,
		FieldGroup6Voltage, FieldGroup6Current:
		idx := int(u.Field - FieldGroup1Voltage)
		if idx%2 == 0 {
			s.Groups[idx/2].SetVoltage = u.Float
		} else {
			s.Groups[idx/2].SetCurrent = u.Float
		}

	case FieldOverVoltageProtection:
		s.OverVoltageProtection = u.Float
	case FieldOverCurrentProtection:
		s.OverCurrentProtection = u.Float
	case FieldOverPowerProtection:
		s.OverPowerProtection = u.Float
	case FieldOverTemperatureProtection:
		s.OverTemperatureProtection = u.Float
	case FieldLowVoltageProtection:
		s.LowVoltageProtection = u.Float

	case FieldBrightness:
		s.Brightness = u.Int
	case FieldVolume:
		s.Volume = u.Int
	case FieldMeteringEnabled:
		s.MeteringEnabled = u.Bool
	case FieldOutputCapacity:
		s.OutputCapacity = u.Float
	case FieldOutputEnergy:
		s.OutputEnergy = u.Float
	case FieldOutputEnabled:
		s.OutputEnabled = u.Bool
	case FieldProtection:
		s.Protection = u.Protection
	case FieldMode:
		s.Mode = u.Mode
	case FieldUpperLimitVoltage:
		s.UpperLimitVoltage = u.Float
	case FieldUpperLimitCurrent:
		s.UpperLimitCurrent = u.Float
	}
}

// ApplyInfo writes one info update. Non-info fields are ignored.
func (i *DeviceInfo) ApplyInfo(u Update) {
	switch u.Field {
	case FieldModelName:
		i.ModelName = u.Text
	case FieldHardwareVersion:
		i.HardwareVersion = u.Text
	case FieldFirmwareVersion:
		i.FirmwareVersion = u.Text
	}
}

// GroupVoltageField returns the voltage field for group n (1-6).
func GroupVoltageField(n int) Field {
	return FieldGroup1Voltage + Field(2*(n-1))
}

// GroupCurrentField returns the current field for group n (1-6).
func GroupCurrentField(n int) Field {
	return FieldGroup1Current + Field(2*(n-1))
}
