package env

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingFolder_Expands_Home(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	t.Setenv(StackWorkingDir, "~/.space-stack")

	assert.Equal(t, filepath.Join(home, ".space-stack"), stackEnv{}.WorkingFolder())
}

func TestWorkingFolder_Defaults_To_Executable_Folder(t *testing.T) {
	t.Setenv(StackWorkingDir, "")

	exe, err := os.Executable()
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(exe), stackEnv{}.WorkingFolder())
}

func TestLogLevel(t *testing.T) {
	t.Setenv(LogLevel, "")
	assert.Equal(t, "Info", stackEnv{}.LogLevel())

	t.Setenv(LogLevel, "debug")
	assert.Equal(t, "debug", stackEnv{}.LogLevel())
}
