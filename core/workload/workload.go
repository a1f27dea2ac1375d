package workload

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/FleekHQ/space-stack/core/stack"
	"github.com/FleekHQ/space-stack/log"
)

var (
	ErrUnknownMode    = errors.New("unknown workload mode")
	ErrDoubleDelivery = errors.New("value delivered more than once")
	ErrLostValue      = errors.New("pushed value never popped")
	ErrOrder          = errors.New("values popped out of push order")
)

// Report sums up a finished run.
type Report struct {
	Mode      Mode
	Workers   int
	Pushed    int64
	Popped    int64
	EmptyPops int64
	// Remaining is the number of values drained after the workers stopped.
	Remaining int
	Elapsed   time.Duration
}

func (r Report) String() string {
	return fmt.Sprintf(
		"mode=%s workers=%d pushed=%d popped=%d emptyPops=%d remaining=%d elapsed=%s",
		r.Mode, r.Workers, r.Pushed, r.Popped, r.EmptyPops, r.Remaining, r.Elapsed,
	)
}

// Runner drives a number of workers against one shared stack and checks
// that every pushed value comes back out exactly once.
type Runner struct {
	stack *stack.Stack[int]
	opts  runnerOptions

	lock      sync.Mutex
	cancel    context.CancelFunc
	ready     chan bool
	readyOnce sync.Once
}

func New(s *stack.Stack[int], opts ...Option) *Runner {
	o := runnerOptions{
		workers: 2,
		ops:     1000,
		mode:    Mixed,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{
		stack: s,
		opts:  o,
		ready: make(chan bool),
	}
}

// WaitForReady is closed once Run has been entered.
func (r *Runner) WaitForReady() chan bool {
	return r.ready
}

// Shutdown cancels a run in progress. Workers stop at their next operation.
func (r *Runner) Shutdown() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.cancel != nil {
		r.cancel()
	}
	return nil
}

// Run executes the workload and verifies the values that came out of the stack.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r.lock.Lock()
	r.cancel = cancel
	r.lock.Unlock()
	r.readyOnce.Do(func() { close(r.ready) })

	span, ctx := opentracing.StartSpanFromContext(ctx, "workload.Run")
	span.SetTag("mode", string(r.opts.mode))
	span.SetTag("workers", r.opts.workers)
	defer span.Finish()

	if r.opts.workers <= 0 || r.opts.ops <= 0 {
		return nil, errors.Errorf("workers and ops must be positive, got %d and %d", r.opts.workers, r.opts.ops)
	}

	start := time.Now()
	var (
		report *Report
		err    error
	)
	switch r.opts.mode {
	case PushOnly:
		report, err = r.runPushOnly(ctx)
	case Mixed:
		report, err = r.runMixed(ctx)
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "mode %q", r.opts.mode)
	}
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}

	report.Mode = r.opts.mode
	report.Workers = r.opts.workers
	report.Elapsed = time.Since(start)
	log.Info("Workload finished", "report:"+report.String())

	return report, nil
}

func (r *Runner) value(worker, i int) int {
	return worker*r.opts.ops + i
}

func (r *Runner) runPushOnly(ctx context.Context) (*Report, error) {
	var pushed int64

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < r.opts.workers; w++ {
		w := w
		eg.Go(func() error {
			span, ctx := opentracing.StartSpanFromContext(ctx, "workload.worker")
			span.SetTag("worker", w)
			defer span.Finish()

			log.Debug("Worker started", fmt.Sprintf("worker:%d", w))
			for i := 0; i < r.opts.ops; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := r.stack.Push(r.value(w, i)); err != nil {
					return errors.Wrapf(err, "worker %d push", w)
				}
				atomic.AddInt64(&pushed, 1)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	drained, err := drain(r.stack)
	if err != nil {
		return nil, err
	}

	// per worker, values must come back newest first
	last := make(map[int]int, r.opts.workers)
	seen := make(map[int]bool, len(drained))
	for _, v := range drained {
		if seen[v] {
			return nil, errors.Wrapf(ErrDoubleDelivery, "value %d", v)
		}
		seen[v] = true

		w, i := v/r.opts.ops, v%r.opts.ops
		if prev, ok := last[w]; ok && i >= prev {
			return nil, errors.Wrapf(ErrOrder, "worker %d: %d popped after %d", w, i, prev)
		}
		last[w] = i
	}
	if int64(len(seen)) != pushed {
		return nil, errors.Wrapf(ErrLostValue, "pushed %d, drained %d", pushed, len(seen))
	}

	return &Report{
		Pushed:    pushed,
		Popped:    int64(len(drained)),
		Remaining: len(drained),
	}, nil
}

func (r *Runner) runMixed(ctx context.Context) (*Report, error) {
	var (
		pushed, popped, empty int64

		mu       sync.Mutex
		received = make(map[int]int)
	)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < r.opts.workers; w++ {
		w := w
		eg.Go(func() error {
			span, ctx := opentracing.StartSpanFromContext(ctx, "workload.worker")
			span.SetTag("worker", w)
			defer span.Finish()

			log.Debug("Worker started", fmt.Sprintf("worker:%d", w))
			local := make([]int, 0, r.opts.ops)
			for i := 0; i < r.opts.ops; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := r.stack.Push(r.value(w, i)); err != nil {
					return errors.Wrapf(err, "worker %d push", w)
				}
				atomic.AddInt64(&pushed, 1)

				var v int
				err := r.stack.PopInto(&v)
				if errors.Is(err, stack.ErrEmptyStack) {
					// another worker got there first
					atomic.AddInt64(&empty, 1)
					continue
				}
				if err != nil {
					return errors.Wrapf(err, "worker %d pop", w)
				}
				atomic.AddInt64(&popped, 1)
				local = append(local, v)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, v := range local {
				received[v]++
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	drained, err := drain(r.stack)
	if err != nil {
		return nil, err
	}
	for _, v := range drained {
		received[v]++
	}

	for v, n := range received {
		if n > 1 {
			return nil, errors.Wrapf(ErrDoubleDelivery, "value %d delivered %d times", v, n)
		}
	}
	if int64(len(received)) != pushed {
		return nil, errors.Wrapf(ErrLostValue, "pushed %d, received %d", pushed, len(received))
	}

	return &Report{
		Pushed:    pushed,
		Popped:    popped,
		EmptyPops: empty,
		Remaining: len(drained),
	}, nil
}

// drain pops until the stack reports it is empty.
func drain(s *stack.Stack[int]) ([]int, error) {
	var out []int
	for {
		v, err := s.Pop()
		if errors.Is(err, stack.ErrEmptyStack) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}
