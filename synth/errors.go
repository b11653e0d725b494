// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidConfig reports a configuration value that violates the
	// engine's precondition: every tunable must be positive and finite.
	ErrInvalidConfig = errors.New("synth: config values must be positive and finite")
)
