// internal/protocol/packet.go
package protocol

import (
	"encoding/binary"
	"math"
)

// Checksum computes the frame checksum over type code, length and
// payload. Header and command bytes are excluded. This additive
// mod-256 sum is the only integrity guard on the link.
func Checksum(typeCode byte, payload []byte) byte {
	sum := uint32(typeCode) + uint32(len(payload))
	for _, b := range payload {
		sum += uint32(b)
	}
	return byte(sum % 256)
}

// Encode builds an outbound frame:
//
//	[0xF1][command][type][length][payload...][checksum]
func Encode(command, typeCode byte, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	frame := make([]byte, 0, MinFrameSize+len(payload))
	frame = append(frame, HeaderOut, command, typeCode, byte(len(payload)))
	frame = append(frame, payload...)
	frame = append(frame, Checksum(typeCode, payload))
	return frame, nil
}

// Decode parses and verifies one inbound frame:
//
//	[0xF0][command][type][length][payload...][checksum]
//
// Unknown type codes decode successfully; the caller decides whether
// the type is meaningful. The returned payload aliases frame.
func Decode(frame []byte) (command, typeCode byte, payload []byte, err error) {
	if len(frame) < MinFrameSize {
		return 0, 0, nil, frameErrorf("%d bytes, need at least %d", len(frame), MinFrameSize)
	}
	if frame[0] != HeaderIn {
		return 0, 0, nil, frameErrorf("header 0x%02X, want 0x%02X", frame[0], HeaderIn)
	}

	command = frame[1]
	typeCode = frame[2]
	length := int(frame[3])

	if len(frame) < MinFrameSize+length {
		return 0, 0, nil, frameErrorf("declared %d payload bytes, frame has %d", length, len(frame)-MinFrameSize)
	}

	payload = frame[4 : 4+length]
	want := Checksum(typeCode, payload)
	if got := frame[4+length]; got != want {
		return 0, 0, nil, frameErrorf("checksum 0x%02X, want 0x%02X", got, want)
	}

	return command, typeCode, payload, nil
}

// FloatToBytes encodes v as a 4-byte little-endian IEEE 754 single.
// Values outside float32 range encode as ±Inf.
func FloatToBytes(v float64) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
	return b
}

// BytesToFloat decodes a 4-byte little-endian IEEE 754 single.
// Extra bytes beyond the first four are ignored.
func BytesToFloat(b []byte) (float64, error) {
	if len(b) < 4 {
		return 0, ErrShortFloat
	}
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
}
