package integrationtest

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/FleekHQ/space-stack/config"
	stackEnv "github.com/FleekHQ/space-stack/core/env"

	"github.com/stretchr/testify/assert"

	stackApp "github.com/FleekHQ/space-stack/app"
)

func runApp(t *testing.T, cf *config.Flags) {
	env := stackEnv.New()
	cfg := config.NewMap(cf)

	app := stackApp.New(cfg, env)
	err := app.Start(context.Background())
	assert.Nil(t, err, "app.Start() Failed")
}

func TestAppDoesNotLeakGoroutines(t *testing.T) {
	cf := &config.Flags{Workers: 4, Ops: 500}

	// the first run starts the runtime's signal watcher, which never exits
	runApp(t, cf)
	goRoutinesBefore := runtime.NumGoroutine()

	runApp(t, cf)

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > goRoutinesBefore && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, goRoutinesBefore, runtime.NumGoroutine(), "Goroutine leaked on app Shutdown")
}

func TestAppRunsBothBackends(t *testing.T) {
	for _, backend := range []string{"slice", "collections"} {
		t.Run(backend, func(t *testing.T) {
			runApp(t, &config.Flags{Workers: 2, Ops: 1000, Mode: "push-only", Backend: backend})
		})
	}
}
