// SPDX-License-Identifier: EPL-2.0

package gitlog

import (
	"bufio"
	"sort"
	"strconv"
	"strings"
	"time"
)

// parseCommits walks `git log --pretty=format:%H|%an|%ae|%at|%s --numstat`
// output: a header line per commit followed by tab-separated numstat lines.
// Binary files report "-" counts and are skipped.
func parseCommits(out string) []Commit {
	var commits []Commit
	var current *Commit

	scanner := bufio.NewScanner(strings.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if parts := strings.Split(line, "|"); len(parts) == 5 && !strings.Contains(line, "\t") {
			if current != nil {
				commits = append(commits, *current)
			}

			timestamp, err := strconv.ParseInt(parts[3], 10, 64)
			if err != nil {
				current = nil
				continue
			}

			current = &Commit{
				Hash:    parts[0],
				Author:  parts[1],
				Email:   parts[2],
				Subject: parts[4],
			}
			current.Timestamp = timestamp
			continue
		}

		if current == nil || line == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			continue
		}

		add, err1 := strconv.Atoi(parts[0])
		del, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			// "-" marks a binary file; it carries no line counts.
			continue
		}

		current.Additions += add
		current.Deletions += del
		current.Files = append(current.Files, FileChange{
			Name:      parts[2],
			Additions: add,
			Deletions: del,
		})
	}

	if current != nil {
		commits = append(commits, *current)
	}

	return commits
}

// parseContributors walks `git shortlog -sne` output, one
// "<count>\t<name> <email>" line per author.
func parseContributors(out string) []Contributor {
	var contributors []Contributor

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}

		name := parts[1]
		email := ""
		if open := strings.Index(name, "<"); open >= 0 {
			if end := strings.Index(name, ">"); end > open {
				email = name[open+1 : end]
				name = strings.TrimSpace(name[:open])
			}
		}

		contributors = append(contributors, Contributor{
			Name:    name,
			Email:   email,
			Commits: count,
		})
	}

	return contributors
}

// MonthCount is one month's commit tally.
type MonthCount struct {
	Month   string // YYYY-MM
	Commits int
}

// Timeline buckets commits by month, sorted chronologically.
func Timeline(commits []Commit) []MonthCount {
	counts := make(map[string]int)
	for _, c := range commits {
		month := time.Unix(c.Timestamp, 0).Format("2006-01")
		counts[month]++
	}

	timeline := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		timeline = append(timeline, MonthCount{Month: month, Commits: n})
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Month < timeline[j].Month
	})

	return timeline
}
