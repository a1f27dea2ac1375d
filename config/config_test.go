package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
)

type dirEnv struct {
	dir string
}

func (d dirEnv) CurrentFolder() (string, error) { return d.dir, nil }
func (d dirEnv) WorkingFolder() string          { return d.dir }
func (d dirEnv) LogLevel() string               { return "info" }

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "stackcfg-*")
	assert.NilError(t, err, "failed to create config dir")
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

func TestNewMap_Defaults(t *testing.T) {
	cfg := NewMap(&Flags{})

	assert.Equal(t, cfg.GetInt(StackWorkers, 0), 4)
	assert.Equal(t, cfg.GetInt(StackOps, 0), 1000)
	assert.Equal(t, cfg.GetString(StackMode, ""), "mixed")
	assert.Equal(t, cfg.GetString(StackBackend, ""), "slice")
	assert.Equal(t, cfg.GetBool(TraceEnabled, true), false)
	assert.Equal(t, cfg.GetString("unknown", "fallback"), "fallback")
}

func TestNewMap_Flags_Override_Defaults(t *testing.T) {
	cfg := NewMap(&Flags{
		Workers:      2,
		Ops:          10,
		Mode:         "push-only",
		Backend:      "collections",
		TraceEnabled: true,
	})

	assert.Equal(t, cfg.GetInt(StackWorkers, 0), 2)
	assert.Equal(t, cfg.GetInt(StackOps, 0), 10)
	assert.Equal(t, cfg.GetString(StackMode, ""), "push-only")
	assert.Equal(t, cfg.GetString(StackBackend, ""), "collections")
	assert.Equal(t, cfg.GetBool(TraceEnabled, false), true)
}

func TestNewJson_Reads_Generated_File(t *testing.T) {
	dir := tempDir(t)
	assert.NilError(t, CreateConfigJson(dir), "failed to generate config")

	cfg := NewJson(dirEnv{dir: dir})

	assert.Equal(t, cfg.GetInt(StackWorkers, 0), 4)
	assert.Equal(t, cfg.GetInt(StackOps, 0), 1000)
	assert.Equal(t, cfg.GetString(StackMode, ""), "mixed")
	assert.Equal(t, cfg.GetBool(TraceEnabled, true), false)
}

func TestNewJson_Missing_File_Uses_Defaults(t *testing.T) {
	cfg := NewJson(dirEnv{dir: tempDir(t)})

	assert.Equal(t, cfg.GetInt(StackWorkers, 7), 7)
	assert.Equal(t, cfg.GetString(StackBackend, "collections"), "collections")
	assert.Equal(t, cfg.GetBool(TraceEnabled, true), true)
}

func TestNewJson_Invalid_File_Uses_Defaults(t *testing.T) {
	dir := tempDir(t)
	err := ioutil.WriteFile(filepath.Join(dir, JsonConfigFileName), []byte("{not json"), 0644)
	assert.NilError(t, err)

	cfg := NewJson(dirEnv{dir: dir})

	assert.Equal(t, cfg.GetInt(StackOps, 12), 12)
}

func TestTestConfig(t *testing.T) {
	cfg := NewTestConfig(map[string]interface{}{
		StackWorkers: 3,
		StackMode:    "push-only",
	})

	assert.Equal(t, cfg.GetInt(StackWorkers, 0), 3)
	assert.Equal(t, cfg.GetString(StackMode, ""), "push-only")
	assert.Equal(t, cfg.GetInt(StackOps, 5), 5)
}
