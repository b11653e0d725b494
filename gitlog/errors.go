// SPDX-License-Identifier: EPL-2.0

package gitlog

import "errors"

var (
	// ErrNotRepository reports a path without a .git directory.
	ErrNotRepository = errors.New("not a git repository")
)
