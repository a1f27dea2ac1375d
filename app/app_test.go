package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FleekHQ/space-stack/config"
	"github.com/FleekHQ/space-stack/core/workload"
	"github.com/FleekHQ/space-stack/mocks"
)

type recordingComponent struct {
	name  string
	order *[]string
	err   error
}

func (c recordingComponent) Shutdown() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

type testEnv struct{}

func (testEnv) CurrentFolder() (string, error) { return "", nil }
func (testEnv) WorkingFolder() string          { return "" }
func (testEnv) LogLevel() string               { return "info" }

func TestApp_Shutdown_Stops_Components_In_Reverse_Order(t *testing.T) {
	a := New(config.NewTestConfig(nil), testEnv{})

	var order []string
	a.Run("Store", recordingComponent{name: "Store", order: &order})
	a.Run("Watcher", recordingComponent{name: "Watcher", order: &order, err: errors.New("already closed")})
	a.Run("Server", recordingComponent{name: "Server", order: &order})

	require.NoError(t, a.Shutdown())
	assert.Equal(t, []string{"Server", "Watcher", "Store"}, order)
	assert.True(t, a.components.IsEmpty())
}

func TestApp_Start_Runs_Workload(t *testing.T) {
	cfg := config.NewTestConfig(map[string]interface{}{
		config.StackWorkers: 2,
		config.StackOps:     1000,
		config.StackMode:    string(workload.PushOnly),
		config.StackBackend: workload.CollectionsBackend,
	})
	a := New(cfg, testEnv{})

	require.NoError(t, a.Start(context.Background()))

	require.NotNil(t, a.Report())
	assert.Equal(t, int64(2000), a.Report().Pushed)
	assert.Equal(t, 2000, a.Report().Remaining)
}

func TestApp_Start_Reads_Config(t *testing.T) {
	cfg := new(mocks.Config)
	cfg.On("GetBool", config.TraceEnabled, false).Return(false)
	cfg.On("GetString", config.StackBackend, workload.SliceBackend).Return(workload.SliceBackend)
	cfg.On("GetString", config.StackMode, string(workload.Mixed)).Return(string(workload.Mixed))
	cfg.On("GetInt", config.StackWorkers, 4).Return(3)
	cfg.On("GetInt", config.StackOps, 1000).Return(200)

	a := New(cfg, testEnv{})
	require.NoError(t, a.Start(context.Background()))

	cfg.AssertExpectations(t)
	assert.Equal(t, 3, a.Report().Workers)
	assert.Equal(t, int64(600), a.Report().Pushed)
}

func TestApp_Start_Fails_On_Bad_Workload(t *testing.T) {
	cfg := config.NewTestConfig(map[string]interface{}{
		config.StackMode: "sideways",
	})
	a := New(cfg, testEnv{})

	err := a.Start(context.Background())
	assert.True(t, errors.Is(err, workload.ErrUnknownMode))
	assert.Nil(t, a.Report())
}

func TestApp_Start_Fails_On_Unknown_Backend(t *testing.T) {
	cfg := config.NewTestConfig(map[string]interface{}{
		config.StackBackend: "btree",
	})
	a := New(cfg, testEnv{})

	err := a.Start(context.Background())
	assert.True(t, errors.Is(err, workload.ErrUnknownBackend))
}
