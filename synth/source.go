// SPDX-License-Identifier: EPL-2.0

package synth

import "io"

// Source is a readable stream of mono PCM samples, the hand-off surface
// between a finished render and the encoding or playback layers.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count; always 1 for rendered buffers.
	Channels() int
	// ReadSamples fills dst with float32 samples in [-1,1] and returns
	// the count written. io.EOF with n == 0 means the stream is done.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// BufferSource exposes a rendered []float64 buffer as a Source.
type BufferSource struct {
	samples    []float64
	sampleRate int
	pos        int
}

// NewBufferSource wraps samples for streaming at sampleRate. The buffer is
// not copied; the source reads it in place.
func NewBufferSource(samples []float64, sampleRate int) *BufferSource {
	return &BufferSource{samples: samples, sampleRate: sampleRate}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return 1 }
func (b *BufferSource) Close() error    { return nil }

// Len returns the total number of samples in the underlying buffer.
func (b *BufferSource) Len() int { return len(b.samples) }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copyFloat64To32(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}

func copyFloat64To32(dst []float32, src []float64) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = float32(src[i])
	}
	return n
}
