// Package lifecycle holds shared settings for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single OnStart/OnStop hook may take.
const DefaultTimeout = 10 * time.Second
