package workload

type Mode string

const (
	// PushOnly has every worker push its values with no concurrent pops.
	// The stack is drained and checked once all workers are done.
	PushOnly Mode = "push-only"
	// Mixed has every worker alternate a push with a pop.
	Mixed Mode = "mixed"
)

type runnerOptions struct {
	workers int
	ops     int
	mode    Mode
}

type Option func(o *runnerOptions)

func WithWorkers(n int) Option {
	return func(o *runnerOptions) {
		o.workers = n
	}
}

// WithOps sets how many values each worker pushes.
func WithOps(n int) Option {
	return func(o *runnerOptions) {
		o.ops = n
	}
}

func WithMode(m Mode) Option {
	return func(o *runnerOptions) {
		o.mode = m
	}
}
