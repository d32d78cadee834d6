// Package keystream expands a 32-byte seed into an unbounded deterministic
// byte stream. Two instances constructed from the same seed produce identical
// bytes no matter how reads are sliced, which is what lets a device be written
// and verified in separate passes without storing the stream anywhere.
package keystream

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// SeedSize is the length of a Seed in bytes.
const SeedSize = 32

// ErrSeedLength is returned by ParseSeed for input that is not exactly
// 64 hexadecimal characters.
var ErrSeedLength = errors.New("seed must be 64 hexadecimal characters")

// Seed keys a stream. Equal seeds yield equal streams.
type Seed [SeedSize]byte

// SeedFromPassphrase derives a seed by hashing the passphrase with SHA-256.
// The same passphrase always yields the same seed.
func SeedFromPassphrase(passphrase string) Seed {
	return Seed(sha256.Sum256([]byte(passphrase)))
}

// ParseSeed decodes a seed given as exactly 64 hex characters with no prefix.
// Upper and lower case digits are both accepted.
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	if len(s) != hex.EncodedLen(SeedSize) {
		return seed, fmt.Errorf("got %d characters: %w", len(s), ErrSeedLength)
	}
	if _, err := hex.Decode(seed[:], []byte(s)); err != nil {
		return seed, fmt.Errorf("decoding seed: %w", err)
	}
	return seed, nil
}

// RandomSeed draws a seed from the operating system's entropy source.
func RandomSeed() (Seed, error) {
	var seed Seed
	if _, err := rand.Read(seed[:]); err != nil {
		return seed, fmt.Errorf("reading random source: %w", err)
	}
	return seed, nil
}

// String returns the seed as 64 lowercase hex characters, the form ParseSeed
// accepts.
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// The stream is produced in fixed-size segments, each generated by a ChaCha20
// cipher keyed with the seed and a nonce carrying the segment index. A single
// chacha20 nonce is good for 256 GiB (32-bit block counter); rolling to a
// fresh cipher every 1 GiB keeps every segment far from that limit while
// devices of any size remain addressable.
const segmentSize = 1 << 30

// Stream produces the keyed byte stream for one seed. The cursor only moves
// forward. Not safe for concurrent use; each consumer constructs its own.
type Stream struct {
	seed    Seed
	segSize int64
	segment uint64 // index of the segment the cursor is in
	used    int64  // bytes already produced from the current segment
	cipher  *chacha20.Cipher
}

// New returns a stream positioned at byte 0.
func New(seed Seed) *Stream {
	return newStream(seed, segmentSize)
}

func newStream(seed Seed, segSize int64) *Stream {
	return &Stream{seed: seed, segSize: segSize}
}

// Fill overwrites p with the next len(p) bytes of the stream and advances the
// cursor past them. Fill boundaries do not affect the produced bytes: one
// 4096-byte call and 4096 one-byte calls yield the same stream.
func (s *Stream) Fill(p []byte) error {
	for len(p) > 0 {
		if s.cipher == nil {
			var nonce [chacha20.NonceSize]byte
			binary.LittleEndian.PutUint64(nonce[:8], s.segment)
			c, err := chacha20.NewUnauthenticatedCipher(s.seed[:], nonce[:])
			if err != nil {
				return fmt.Errorf("keying stream segment %d: %w", s.segment, err)
			}
			s.cipher = c
		}
		n := s.segSize - s.used
		if int64(len(p)) < n {
			n = int64(len(p))
		}
		chunk := p[:n]
		clear(chunk)
		s.cipher.XORKeyStream(chunk, chunk)
		s.used += n
		p = p[n:]
		if s.used == s.segSize {
			s.segment++
			s.used = 0
			s.cipher = nil
		}
	}
	return nil
}
