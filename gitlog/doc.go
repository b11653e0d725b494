// SPDX-License-Identifier: EPL-2.0

// Package gitlog extracts commit activity from a local git repository by
// shelling out to the git binary, producing the event lists the synth and
// visual packages consume.
//
//	analyzer, err := gitlog.NewAnalyzer("/path/to/repo")
//	commits, err := analyzer.Commits(ctx)
//	samples, err := synth.Render(gitlog.Events(commits), synth.DefaultConfig())
//
// Merge commits are skipped and binary files contribute no line counts,
// matching `git log --numstat --no-merges` semantics. A repository with no
// commits yields an empty list, not an error.
package gitlog
