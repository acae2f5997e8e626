package pwg

import (
	"github.com/rs/zerolog"

	"github.com/vocdoni/acvm-go/solver/blackbox"
)

type config struct {
	backend blackbox.Backend
	logger  zerolog.Logger
}

// Option configures a Session at construction time, following the
// functional-options idiom the teacher uses for its own solver/prover
// configuration surface.
type Option func(*config)

// WithBackend supplies the proving-system-specific implementation for
// SchnorrVerify, Pedersen and FixedBaseScalarMul. Without this option,
// those blackbox calls fail with BlackBoxFunctionFailed if ever reached.
func WithBackend(b blackbox.Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithLogger overrides the session's structured logger. Defaults to a
// disabled logger, matching gnark's logger.Disable() default posture.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	c := config{
		backend: blackbox.UnimplementedBackend{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
