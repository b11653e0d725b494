// SPDX-License-Identifier: EPL-2.0

// Package repotone turns a git repository's commit history into art:
// audio (each commit becomes an enveloped note) and images (commits as
// particles, waves or heat cells).
//
// # Quick Start
//
// The simplest way to sonify a repository:
//
//	analyzer, _ := gitlog.NewAnalyzer(".")
//	commits, _ := analyzer.Commits(ctx)
//
//	f, _ := os.Create("repo.wav")
//	defer f.Close()
//	err := repotone.SonifyWAV(f, gitlog.Events(commits), synth.DefaultConfig())
//
// # Pipeline
//
// The packages compose in sequence and can be used independently:
//
//   - gitlog extracts timestamped add/delete activity from git history
//   - event normalizes raw activity into a common coordinate space
//   - synth renders events into a mono float64 sample buffer
//   - formats/wav encodes a buffer as 16-bit PCM WAV
//   - visual draws the same events as PNG-encodable artwork
//   - play previews a rendered buffer on the default audio device
//
// # Sound Mapping
//
// Each commit triggers a 0.1 second note at a pitch derived from its
// add/delete ratio (deletions pull toward 110Hz, additions toward 440Hz
// around the 220Hz base) and a loudness derived from its activity
// relative to the busiest commit. Temporal spacing between commits is
// preserved; the whole render is capped at 60 seconds. Output is
// deterministic for a given history and configuration.
//
// # Degenerate Histories
//
// Empty histories render one second of silence; all-zero activity renders
// a silent buffer of the normal length; a single-instant history stacks
// every note at the start. None of these are errors.
package repotone
