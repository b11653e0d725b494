// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/repotone/synth"
	"github.com/ik5/repotone/utils"
)

// Encode writes samples as a mono 16-bit PCM WAV at sampleRate. Each
// sample is clamped to [-1,1] and scaled to the signed 16-bit range; the
// clamp applies even to normalized buffers, since rounding can leave a
// value marginally above unity.
func Encode(ws io.WriteSeeker, sampleRate int, samples []float64) error {
	enc := gowav.NewEncoder(ws, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(utils.Float64ToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}

// EncodeSource drains src into a mono 16-bit PCM WAV. The source's own
// sample rate is used.
func EncodeSource(ws io.WriteSeeker, src synth.Source) error {
	enc := gowav.NewEncoder(ws, src.SampleRate(), 16, 1, 1)

	format := &goaudio.Format{NumChannels: 1, SampleRate: src.SampleRate()}
	readBuf := make([]float32, 4096)
	intBuf := &goaudio.IntBuffer{Format: format, SourceBitDepth: 16}

	for {
		n, err := src.ReadSamples(readBuf)
		if n > 0 {
			intBuf.Data = intBuf.Data[:0]
			for _, s := range readBuf[:n] {
				intBuf.Data = append(intBuf.Data, int(utils.Float64ToInt16(float64(s))))
			}
			if werr := enc.Write(intBuf); werr != nil {
				return fmt.Errorf("writing wav data: %w", werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}
