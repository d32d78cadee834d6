package keystream

// NewWithSegmentSize returns a stream whose internal segment length is
// segSize bytes, so tests can cross segment boundaries without generating
// gigabytes.
func NewWithSegmentSize(seed Seed, segSize int64) *Stream {
	return newStream(seed, segSize)
}
