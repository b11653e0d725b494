// SPDX-License-Identifier: EPL-2.0

// Package play previews rendered audio through the system's default
// output device using the oto library. It is a thin convenience layer for
// the CLI; library users who need more control should feed a
// synth.Source into their own audio stack.
package play

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/repotone/synth"
)

// Play blocks until src has been played to the end or ctx is canceled.
// The stream is played as mono float32 at the source's sample rate.
func Play(ctx context.Context, src synth.Source) error {
	op := &oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}

	select {
	case <-ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	player := otoCtx.NewPlayer(&sourceReader{src: src})
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

// sourceReader adapts a synth.Source to the byte stream oto consumes:
// little-endian float32, one channel.
type sourceReader struct {
	src synth.Source
	buf []float32
	eof bool
}

func (r *sourceReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}

	samples := len(p) / 4
	if samples == 0 {
		return 0, nil
	}

	if len(r.buf) < samples {
		r.buf = make([]float32, samples)
	}

	n, err := r.src.ReadSamples(r.buf[:samples])
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(r.buf[i]))
	}

	if err == io.EOF {
		r.eof = true
		if n == 0 {
			return 0, io.EOF
		}
		return n * 4, nil
	}
	if err != nil {
		return n * 4, fmt.Errorf("reading samples: %w", err)
	}

	return n * 4, nil
}
