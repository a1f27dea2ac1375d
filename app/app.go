package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/FleekHQ/space-stack/config"
	"github.com/FleekHQ/space-stack/core"
	"github.com/FleekHQ/space-stack/core/env"
	"github.com/FleekHQ/space-stack/core/stack"
	"github.com/FleekHQ/space-stack/core/workload"
	"github.com/FleekHQ/space-stack/log"
	"github.com/FleekHQ/space-stack/tracing"
)

const appName = "space-stack"

// Shutdown logic follows this example https://gist.github.com/akhenakh/38dbfea70dc36964e23acc19777f3869
type App struct {
	eg         *errgroup.Group
	components *stack.Stack[*componentMap]
	cfg        config.Config
	env        env.StackEnv
	report     *workload.Report
}

type componentMap struct {
	name      string
	component core.Component
}

// closerComponent lets an io.Closer be shut down like any other component.
type closerComponent struct {
	io.Closer
}

func (c closerComponent) Shutdown() error {
	return c.Close()
}

func New(cfg config.Config, env env.StackEnv) *App {
	return &App{
		components: stack.New[*componentMap](),
		cfg:        cfg,
		env:        env,
	}
}

// Start is the Entry point for the app.
// It sets up the shared stack and runs the configured workload against it.
// Start returns when the workload is done, the context is cancelled or the
// process is interrupted, after shutting every component down.
func (a *App) Start(ctx context.Context) error {
	a.eg, ctx = errgroup.WithContext(ctx)

	// setup to detect interruption
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	if a.cfg.GetBool(config.TraceEnabled, false) {
		_, closer := tracing.MustInit(appName)
		a.Run("Tracer", closerComponent{closer})
	}

	backend := a.cfg.GetString(config.StackBackend, workload.SliceBackend)
	shared, err := workload.NewStack(backend)
	if err != nil {
		return err
	}

	runner := workload.New(
		shared,
		workload.WithWorkers(a.cfg.GetInt(config.StackWorkers, 4)),
		workload.WithOps(a.cfg.GetInt(config.StackOps, 1000)),
		workload.WithMode(workload.Mode(a.cfg.GetString(config.StackMode, string(workload.Mixed)))),
	)

	finished := make(chan struct{})
	a.RunAsync("Workload", runner, func() error {
		defer close(finished)
		report, err := runner.Run(ctx)
		if err != nil {
			return errors.Wrap(err, "workload failed")
		}
		a.report = report
		return nil
	})

	log.Info("Workload running", "backend:"+backend)

	// wait for interruption, done signal or the workload finishing
	select {
	case <-interrupt:
		log.Debug("Got interrupt signal")
	case <-ctx.Done():
		log.Debug("Got context done signal")
	case <-finished:
		log.Debug("Workload finished")
	}

	return a.Shutdown()
}

// Report returns the result of the last completed workload, if any.
func (a *App) Report() *workload.Report {
	return a.report
}

// Run registers this component to be cleaned up on Shutdown
func (a *App) Run(name string, component core.Component) {
	log.Debug("Starting Component", "name:"+name)
	a.register(name, component)
}

// RunAsync performs the same function as Run() but also accepts an function to be run
// async to initialize the component.
func (a *App) RunAsync(name string, component core.AsyncComponent, fn func() error) {
	log.Debug("Starting Async Component", "name:"+name)
	if a.eg == nil {
		log.Warn("App.RunAsync() should be called after App.Start()")
		return
	}

	a.eg.Go(func() error {
		return fn()
	})

	<-component.WaitForReady()
	a.register(name, component)
}

func (a *App) register(name string, component core.Component) {
	err := a.components.Push(&componentMap{
		name:      name,
		component: component,
	})
	if err != nil {
		log.Error(fmt.Sprintf("Could not track component %s", name), err)
	}
}

// Shutdown would perform a graceful shutdown of all components added through the
// Run() or RunAsync() functions, most recently added first
func (a *App) Shutdown() error {
	log.Info("Shutdown started")
	for {
		m, err := a.components.Pop()
		if errors.Is(err, stack.ErrEmptyStack) {
			break
		}
		if err != nil {
			log.Error("Could not pop component", err)
			break
		}

		log.Debug("Shutting down Component", fmt.Sprintf("name:%s", m.name))
		if err := m.component.Shutdown(); err != nil {
			log.Error(fmt.Sprintf("Error shutting down %s", m.name), err)
		}
	}

	var err error
	if a.eg != nil {
		err = a.eg.Wait()
	}
	log.Info("Shutdown complete")
	return err
}
