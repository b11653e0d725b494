// SPDX-License-Identifier: EPL-2.0

// Command repotone generates visual and audio art from a git repository's
// commit history.
//
// Usage:
//
//	repotone [flags] [repo-path]
//
// By default it renders particle art of the current directory's history
// into repo-art.png. Pass -a to also sonify the history into a WAV file,
// and -play to preview the audio on the default output device.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"github.com/ik5/repotone/event"
	"github.com/ik5/repotone/formats/wav"
	"github.com/ik5/repotone/gitlog"
	"github.com/ik5/repotone/play"
	"github.com/ik5/repotone/synth"
	"github.com/ik5/repotone/visual"
)

func main() {
	imageOut := flag.String("o", "repo-art.png", "output image file path")
	audioOut := flag.String("a", "", "output audio file path (e.g. repo-art.wav)")
	styleName := flag.String("s", "particle", "visual style: particle, flow or heatmap")
	width := flag.Int("w", visual.DefaultWidth, "image width in pixels")
	height := flag.Int("H", visual.DefaultHeight, "image height in pixels")
	sampleRate := flag.Int("rate", synth.DefaultSampleRate, "audio sample rate in Hz")
	noteDuration := flag.Float64("note", synth.DefaultDurationPerEvent, "seconds of audio per commit")
	baseFrequency := flag.Float64("freq", synth.DefaultBaseFrequency, "base note frequency in Hz")
	preview := flag.Bool("play", false, "play the rendered audio after writing it")
	flag.Parse()

	repoPath := "."
	if flag.NArg() > 0 {
		repoPath = flag.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	style, err := visual.ParseStyle(*styleName)
	if err != nil {
		fatal(err)
	}

	analyzer, err := gitlog.NewAnalyzer(repoPath)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Analyzing repository: %s\n", analyzer.Path())

	commits, err := analyzer.Commits(ctx)
	if err != nil {
		fatal(err)
	}
	events := gitlog.Events(commits)

	fmt.Printf("Found %d commits\n", len(commits))

	renderer := visual.Renderer{Width: *width, Height: *height, Style: style}
	if err := writePNG(*imageOut, renderer, events); err != nil {
		fatal(err)
	}
	fmt.Printf("Artwork saved to: %s\n", *imageOut)

	if *audioOut == "" && !*preview {
		return
	}

	cfg := synth.Config{
		SampleRate:       *sampleRate,
		DurationPerEvent: *noteDuration,
		BaseFrequency:    *baseFrequency,
	}

	samples, stats, err := synth.RenderWithStats(events, cfg)
	if err != nil {
		fatal(err)
	}

	duration := float64(len(samples)) / float64(cfg.SampleRate)
	fmt.Printf("Rendered %.1fs of audio from %d commits\n", duration, stats.Events)
	if stats.Truncated > 0 {
		fmt.Printf("Note: %d notes were clipped by the 60s cap\n", stats.Truncated)
	}

	if *audioOut != "" {
		if err := writeWAV(*audioOut, cfg.SampleRate, samples); err != nil {
			fatal(err)
		}
		fmt.Printf("Audio saved to: %s\n", *audioOut)
	}

	if *preview {
		fmt.Println("Playing...")
		if err := play.Play(ctx, synth.NewBufferSource(samples, cfg.SampleRate)); err != nil {
			fatal(err)
		}
	}
}

func writePNG(path string, renderer visual.Renderer, events []event.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(f, renderer.Render(events)); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

func writeWAV(path string, sampleRate int, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := wav.Encode(f, sampleRate, samples); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "repotone:", err)
	os.Exit(1)
}
