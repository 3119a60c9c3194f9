// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tracker

import (
	"fmt"
	"os"
)

// debugEnabled gates logf output. Diagnostics (detected layout, skipped
// element counts) are auxiliary; their absence never blocks generation.
var debugEnabled = os.Getenv("FOREMAN_DEBUG") != ""

// logf writes a diagnostic line to stderr when FOREMAN_DEBUG is set.
func logf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "foreman: "+format+"\n", args...)
}
