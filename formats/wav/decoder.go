// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// Decode reads a mono 16-bit PCM WAV back into float64 samples, returning
// the samples and the file's sample rate. It accepts exactly the format
// Encode produces; the int16 values are divided by 32767 so an encode /
// decode round trip stays within one LSB of the original buffer.
func Decode(rs io.ReadSeeker) ([]float64, int, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	if dec.NumChans != 1 || dec.BitDepth != 16 {
		return nil, 0, ErrOnlyMono16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("reading wav data: %w", err)
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / 32767.0
	}

	return samples, int(dec.SampleRate), nil
}
