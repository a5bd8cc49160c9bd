package config

import "errors"

// ErrEmptyBridgeList is returned when a job description names no bridges:
// there is nothing to route, which is almost always an authoring mistake.
var ErrEmptyBridgeList = errors.New("config: bridge list is empty")
