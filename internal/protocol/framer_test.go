// internal/protocol/framer_test.go
package protocol

import (
	"bytes"
	"testing"
)

func TestFramer_WholeFrame(t *testing.T) {
	frame := buildInbound(CmdGet, TypeSetVoltage, FloatToBytes(5.0))

	var f Framer
	f.Feed(frame)
	got := f.Extract()
	if len(got) != 1 || !bytes.Equal(got[0], frame) {
		t.Fatalf("got=%v", got)
	}
	if f.Pending() != 0 {
		t.Fatalf("pending=%d want 0", f.Pending())
	}
}

func TestFramer_Fragmentation(t *testing.T) {
	frame := buildInbound(CmdGet, TypeAll, make([]byte, 119))

	// Any partition of the same bytes must yield the same single frame.
	partitions := [][]int{
		{len(frame)},          // whole
		{1, len(frame) - 1},   // header alone
		{4, len(frame) - 4},   // split right after the length byte
		{len(frame) - 1, 1},   // checksum alone
	}
	for _, sizes := range partitions {
		var f Framer
		var total [][]byte
		off := 0
		for _, n := range sizes {
			f.Feed(frame[off : off+n])
			total = append(total, f.Extract()...)
			off += n
		}
		if len(total) != 1 || !bytes.Equal(total[0], frame) {
			t.Fatalf("partition %v: got %d frames", sizes, len(total))
		}
	}

	// Byte at a time.
	var f Framer
	var total [][]byte
	for _, b := range frame {
		f.Feed([]byte{b})
		total = append(total, f.Extract()...)
	}
	if len(total) != 1 || !bytes.Equal(total[0], frame) {
		t.Fatalf("byte-at-a-time: got %d frames", len(total))
	}
}

func TestFramer_MultipleFramesOneChunk(t *testing.T) {
	a := buildInbound(CmdGet, TypeSetVoltage, FloatToBytes(1.0))
	b := buildInbound(CmdGet, TypeSetCurrent, FloatToBytes(2.0))

	var f Framer
	f.Feed(append(append([]byte(nil), a...), b...))
	got := f.Extract()
	if len(got) != 2 || !bytes.Equal(got[0], a) || !bytes.Equal(got[1], b) {
		t.Fatalf("got=%d frames", len(got))
	}
}

func TestFramer_NoiseResync(t *testing.T) {
	frame := buildInbound(CmdGet, TypeTemperature, FloatToBytes(25.0))

	var f Framer
	f.Feed([]byte{0x12, 0x34, 0x56}) // line noise, no sync byte
	if got := f.Extract(); len(got) != 0 {
		t.Fatalf("noise produced frames: %v", got)
	}
	f.Feed(frame)
	got := f.Extract()
	if len(got) != 1 || !bytes.Equal(got[0], frame) {
		t.Fatalf("got=%v", got)
	}
}

func TestFramer_SyncByteInsidePayload(t *testing.T) {
	// A payload containing 0xF0 must not derail the scan: the framer
	// consumes the enclosing frame whole, and the next frame after it
	// is still recovered.
	a := buildInbound(CmdGet, 42, []byte{0xF0, 0xF0, 0x99})
	b := buildInbound(CmdGet, TypeSetVoltage, FloatToBytes(5.0))

	var f Framer
	f.Feed(a)
	f.Feed(b)
	got := f.Extract()
	if len(got) != 2 || !bytes.Equal(got[0], a) || !bytes.Equal(got[1], b) {
		t.Fatalf("got=%d frames", len(got))
	}
}

func TestFramer_PartialRetainedAcrossExtract(t *testing.T) {
	frame := buildInbound(CmdGet, TypeSetVoltage, FloatToBytes(5.0))

	var f Framer
	f.Feed(frame[:6])
	if got := f.Extract(); len(got) != 0 {
		t.Fatalf("partial frame emitted: %v", got)
	}
	if f.Pending() != 6 {
		t.Fatalf("pending=%d want 6", f.Pending())
	}
	f.Feed(frame[6:])
	got := f.Extract()
	if len(got) != 1 || !bytes.Equal(got[0], frame) {
		t.Fatalf("got=%v", got)
	}
}

func TestFramer_NeverEmitsShortOrOverrunningFrames(t *testing.T) {
	var f Framer
	// Sync byte with a huge declared length and not enough bytes.
	f.Feed([]byte{HeaderIn, 0xA1, 0xFF, 200, 1, 2, 3})
	if got := f.Extract(); len(got) != 0 {
		t.Fatalf("overrunning frame emitted: %v", got)
	}
	for _, fr := range f.Extract() {
		if len(fr) < MinFrameSize {
			t.Fatalf("short frame emitted: %v", fr)
		}
	}
}

func TestFramer_Reset(t *testing.T) {
	var f Framer
	f.Feed([]byte{HeaderIn, 0xA1})
	f.Reset()
	if f.Pending() != 0 {
		t.Fatalf("pending=%d after reset", f.Pending())
	}
}

func TestFramer_CompactionKeepsStream(t *testing.T) {
	// Push enough consumed traffic through to trigger compaction, with
	// a partial frame straddling the compaction point.
	frame := buildInbound(CmdGet, TypeSetVoltage, FloatToBytes(5.0))

	const repeats = 100 // well past the compaction threshold in bytes

	var stream []byte
	for i := 0; i < repeats; i++ {
		stream = append(stream, frame...)
	}
	stream = append(stream, frame[:3]...) // trailing partial

	var f Framer
	f.Feed(stream)
	if got := f.Extract(); len(got) != repeats {
		t.Fatalf("got %d frames, want %d", len(got), repeats)
	}
	if f.Pending() != 3 {
		t.Fatalf("pending=%d want 3", f.Pending())
	}

	f.Feed(frame[3:])
	got := f.Extract()
	if len(got) != 1 || !bytes.Equal(got[0], frame) {
		t.Fatalf("straddling frame lost after compaction")
	}
}
