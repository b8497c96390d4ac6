package model

import "time"

// Shared defaults used by the CLI binary.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultFormat       = "text"
)
