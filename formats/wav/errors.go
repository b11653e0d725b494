// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile             = errors.New("not a RIFF/WAVE file")
	ErrOnlyMono16bitSupported = errors.New("only mono PCM 16-bit WAV is supported")
)
