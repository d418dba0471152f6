package jobs

import "bytes"

// DefaultOutputLimit caps each of stdout and stderr kept in a job output.
const DefaultOutputLimit = 1 << 20

const truncatedMarker = "\n[output truncated]\n"

// cappedBuffer keeps the first limit bytes written to it and drops the rest.
// Writes never fail, so a chatty hook is not killed by a broken pipe.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.buf.Len(); room < len(p) {
		b.truncated = true
		if room > 0 {
			b.buf.Write(p[:room])
		}
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string {
	if b.truncated {
		return b.buf.String() + truncatedMarker
	}
	return b.buf.String()
}
