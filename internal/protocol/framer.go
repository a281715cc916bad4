// internal/protocol/framer.go
package protocol

// compactAt is the consumed-prefix size that triggers buffer compaction.
const compactAt = 512

// Framer reassembles complete inbound frames from arbitrarily chunked
// byte deliveries. Single writer, single reader; not safe for
// concurrent use.
//
// The framer only delimits byte ranges. Checksum verification belongs
// to Decode, so resynchronization after noise can skip bytes cheaply
// without re-parsing verified data.
type Framer struct {
	buf []byte
	r   int // read cursor: everything before it has been consumed
}

// Feed appends a chunk to the accumulator. Chunk size is unconstrained;
// single bytes and multi-frame deliveries are handled identically.
func (f *Framer) Feed(chunk []byte) {
	f.buf = append(f.buf, chunk...)
}

// Extract scans for complete frames and returns them in arrival order.
// A trailing partial frame stays buffered for the next Feed. Bytes that
// cannot start a frame (no 0xF0 sync) are skipped one at a time.
//
// Returned slices are copies; they do not alias the accumulator.
func (f *Framer) Extract() [][]byte {
	var frames [][]byte

	i := f.r
	for i < len(f.buf) {
		if f.buf[i] != HeaderIn {
			i++
			continue
		}
		if i+3 >= len(f.buf) {
			// Sync byte seen but no length byte yet.
			break
		}

		total := MinFrameSize + int(f.buf[i+3])
		if i+total > len(f.buf) {
			// Frame start seen but tail not delivered yet.
			break
		}

		frame := make([]byte, total)
		copy(frame, f.buf[i:i+total])
		frames = append(frames, frame)
		i += total
	}

	f.r = i
	f.compact()
	return frames
}

// Pending returns the number of unconsumed buffered bytes.
func (f *Framer) Pending() int {
	return len(f.buf) - f.r
}

// Reset discards all buffered bytes. Called on reconnect so stale
// partial frames from a previous link never prefix new data.
func (f *Framer) Reset() {
	f.buf = f.buf[:0]
	f.r = 0
}

// compact drops the consumed prefix once it is large enough to matter,
// keeping the accumulator bounded under sustained small-chunk delivery.
func (f *Framer) compact() {
	if f.r == 0 {
		return
	}
	if f.r == len(f.buf) {
		f.buf = f.buf[:0]
		f.r = 0
		return
	}
	if f.r >= compactAt {
		n := copy(f.buf, f.buf[f.r:])
		f.buf = f.buf[:n]
		f.r = 0
	}
}
