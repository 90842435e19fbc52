package configs

import "time"

// HTTP defines configuration for the HTTP server. Port is the TCP port to
// bind. CORS origins are the dashboard frontends allowed to call the API;
// an empty list disables cross-origin access. RateLimit bounds requests
// per client IP within RateWindow; zero disables limiting.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	RateLimit  int           `env:"RATE_LIMIT" envDefault:"100"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
