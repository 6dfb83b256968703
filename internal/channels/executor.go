package channels

import (
	"fmt"

	"adops-server/internal/observability"
)

// AdapterConstructor builds an adapter bound to one channel configuration.
type AdapterConstructor func(cfg Config, logger *observability.Logger) Adapter

// ExecutorFactory resolves a channel identifier to a concrete adapter.
// The registry is closed and populated explicitly at startup: supporting a
// new platform means registering one constructor here and nothing else.
type ExecutorFactory struct {
	registry map[Channel]AdapterConstructor
	logger   *observability.Logger
}

// NewExecutorFactory creates an empty factory. Constructors are registered
// during application wiring.
func NewExecutorFactory(logger *observability.Logger) *ExecutorFactory {
	return &ExecutorFactory{
		registry: make(map[Channel]AdapterConstructor),
		logger:   logger,
	}
}

// Register adds a constructor for a channel. Registering the same channel
// twice replaces the previous constructor.
func (f *ExecutorFactory) Register(channel Channel, constructor AdapterConstructor) {
	f.registry[channel] = constructor
}

// GetExecutor returns an adapter for the channel bound to the given config.
// Adapters are cheap stateless wrappers around a configuration, so a fresh
// instance is built per call.
func (f *ExecutorFactory) GetExecutor(channel Channel, cfg Config) (Adapter, error) {
	constructor, ok := f.registry[channel]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for %q: %w", channel, ErrUnsupportedChannel)
	}
	return constructor(cfg, f.logger), nil
}
