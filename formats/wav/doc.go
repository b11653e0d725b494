// SPDX-License-Identifier: EPL-2.0

// Package wav encodes rendered sample buffers as mono 16-bit PCM WAV
// files, and decodes them back for round-tripping.
// It uses the github.com/go-audio library for robust WAV file handling.
//
// # Encoding
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.Encode(f, 44100, samples)
//
// Samples are clamped to [-1,1] before scaling to int16, so a buffer whose
// normalization left a value marginally above unity still encodes cleanly.
//
// # Decoding
//
//	f, _ := os.Open("out.wav")
//	samples, rate, err := wav.Decode(f)
//
// Only the format this package writes is accepted: mono, 16-bit PCM.
package wav
