// SPDX-License-Identifier: EPL-2.0

package gitlog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ik5/repotone/event"
)

// FileChange is one file's diff stat within a commit.
type FileChange struct {
	Name      string
	Additions int
	Deletions int
}

// Commit is one extracted commit: the Event fields drive sonification and
// visualization, the rest is metadata for reporting.
type Commit struct {
	event.Event

	Hash    string
	Author  string
	Email   string
	Subject string
	Files   []FileChange
}

// Contributor aggregates commit counts per author.
type Contributor struct {
	Name    string
	Email   string
	Commits int
}

// Analyzer extracts history from one repository.
type Analyzer struct {
	repoPath string
}

// NewAnalyzer validates that repoPath is a git work tree. The path is
// resolved to absolute so later git invocations are independent of the
// process working directory.
func NewAnalyzer(repoPath string) (*Analyzer, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", repoPath, err)
	}

	if info, err := os.Stat(filepath.Join(abs, ".git")); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%q: %w", repoPath, ErrNotRepository)
	}

	return &Analyzer{repoPath: abs}, nil
}

// Path returns the resolved repository path.
func (a *Analyzer) Path() string { return a.repoPath }

// Commits returns the repository history, newest first, with per-commit
// line counts summed over the changed files. A repository with no commits
// returns an empty slice.
func (a *Analyzer) Commits(ctx context.Context) ([]Commit, error) {
	out, err := a.git(ctx,
		"log",
		"--pretty=format:%H|%an|%ae|%at|%s",
		"--numstat",
		"--no-merges",
	)
	if err != nil {
		// git log fails on a repository without any commit; treat it
		// as an empty history like the rest of the degenerate inputs.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}

	return parseCommits(out), nil
}

// Contributors returns per-author commit counts, most active first.
func (a *Analyzer) Contributors(ctx context.Context) ([]Contributor, error) {
	out, err := a.git(ctx, "shortlog", "-sne", "--no-merges", "HEAD")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}

	return parseContributors(out), nil
}

func (a *Analyzer) git(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-C", a.repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s: %w", args[0], bytes.TrimSpace(stderr.Bytes()), err)
	}

	return stdout.String(), nil
}

// Events projects commits onto the bare event records the renderers take.
func Events(commits []Commit) []event.Event {
	events := make([]event.Event, len(commits))
	for i, c := range commits {
		events[i] = c.Event
	}
	return events
}
