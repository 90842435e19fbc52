package configs

import "time"

// Breaker configures the circuit breaker guarding the data store. The
// breaker opens once at least MinRequests calls were made in the current
// Interval and the failure ratio reached FailureRatio. It stays open for
// Timeout and then lets MaxRequests probe calls through.
type Breaker struct {
	MaxRequests  uint32        `env:"MAX_REQUESTS" envDefault:"3"`
	Interval     time.Duration `env:"INTERVAL" envDefault:"1m"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"30s"`
	MinRequests  uint32        `env:"MIN_REQUESTS" envDefault:"10"`
	FailureRatio float64       `env:"FAILURE_RATIO" envDefault:"0.6"`
}
