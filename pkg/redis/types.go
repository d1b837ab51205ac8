package redis

import "errors"

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the service is healthy and running
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the service is not healthy or not running
	StatusDown HealthStatus = "DOWN"
)

// ErrTxConflict is returned when an optimistic transaction keeps losing the race
// for its watched keys.
var ErrTxConflict = errors.New("redis: transaction conflict, retries exhausted")
