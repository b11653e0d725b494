// SPDX-License-Identifier: EPL-2.0

// Package sonitest provides deterministic fixtures shared by the repotone
// test suites: synthetic event histories and an in-memory WriteSeeker for
// exercising the WAV encoder without touching the filesystem.
package sonitest

import (
	"errors"
	"io"

	"github.com/ik5/repotone/event"
)

// Spread returns n events with evenly spaced timestamps and a constant,
// non-zero activity. Useful when a test only cares about placement.
func Spread(n int, start, step int64) []event.Event {
	events := make([]event.Event, n)
	for i := range events {
		events[i] = event.Event{
			Timestamp: start + int64(i)*step,
			Additions: 10,
			Deletions: 5,
		}
	}
	return events
}

// Ramp returns n events with evenly spaced timestamps and deterministic,
// varying activity, cycling through add-heavy, balanced and delete-heavy
// shapes.
func Ramp(n int, start, step int64) []event.Event {
	events := make([]event.Event, n)
	for i := range events {
		events[i] = event.Event{
			Timestamp: start + int64(i)*step,
			Additions: (i*7)%23 + 1,
			Deletions: (i * 3) % 11,
		}
	}
	return events
}

// Burst returns n events all sharing one timestamp, for overlap tests.
func Burst(n int, timestamp int64, additions, deletions int) []event.Event {
	events := make([]event.Event, n)
	for i := range events {
		events[i] = event.Event{
			Timestamp: timestamp,
			Additions: additions,
			Deletions: deletions,
		}
	}
	return events
}

// WriteSeeker is an in-memory io.WriteSeeker, enough for the go-audio WAV
// encoder which seeks back to patch the RIFF header.
type WriteSeeker struct {
	buf []byte
	pos int
}

// Bytes returns the written content.
func (ws *WriteSeeker) Bytes() []byte { return ws.buf }

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	if need := ws.pos + len(p); need > len(ws.buf) {
		grown := make([]byte, need)
		copy(grown, ws.buf)
		ws.buf = grown
	}
	n := copy(ws.buf[ws.pos:], p)
	ws.pos += n
	return n, nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(ws.pos) + offset
	case io.SeekEnd:
		next = int64(len(ws.buf)) + offset
	default:
		return 0, errors.New("sonitest: invalid whence")
	}
	if next < 0 {
		return 0, errors.New("sonitest: negative seek position")
	}
	ws.pos = int(next)
	return next, nil
}
