// Package lifecycle holds shared values for starting and stopping long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of servers and stores.
const DefaultTimeout = 10 * time.Second
