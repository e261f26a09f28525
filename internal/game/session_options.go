package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/ohell/internal/gameid"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	clock    quartz.Clock
	logger   *log.Logger
	eventBus EventBus
	newID    func() string
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. Sessions log at debug level only.
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithEventBus publishes events on an existing bus instead of a new one.
func WithEventBus(bus EventBus) SessionOption {
	return func(c *sessionConfig) {
		c.eventBus = bus
	}
}

// WithIDGenerator replaces the session ID generator, mostly for tests.
func WithIDGenerator(newID func() string) SessionOption {
	return func(c *sessionConfig) {
		c.newID = newID
	}
}

func newSessionConfig(opts []SessionOption) *sessionConfig {
	cfg := &sessionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.eventBus == nil {
		cfg.eventBus = NewEventBus()
	}
	if cfg.newID == nil {
		cfg.newID = gameid.Generate
	}
	return cfg
}
