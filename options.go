package genarena

// Option configures an Arena at construction time.
type Option func(*config)

type config struct {
	name      string
	capacity  int
	logger    Logger
	observers []Observer
}

// WithName labels the arena in logs and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithCapacity pre-allocates room for n values.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger routes structural events (growth, reserve, clear) to logger.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers an observer for structural events. It may be given
// more than once.
func WithObserver(observer Observer) Option {
	return func(c *config) {
		if observer != nil {
			c.observers = append(c.observers, observer)
		}
	}
}
