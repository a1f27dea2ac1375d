package env

import (
	syslog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	StackWorkingDir = "STACK_APP_DIR"
	LogLevel        = "LOG_LEVEL"
)

type StackEnv interface {
	CurrentFolder() (string, error)
	WorkingFolder() string
	LogLevel() string
}

type stackEnv struct {
}

// New loads a .env file from the current directory, if there is one, and
// returns an env reading from the process environment.
func New() StackEnv {
	err := godotenv.Load()
	if err != nil {
		syslog.Println("Error loading .env file. Using defaults")
	}

	return stackEnv{}
}

func (s stackEnv) CurrentFolder() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Dir(path), nil
}

// WorkingFolder returns STACK_APP_DIR with ~ expanded, or the folder of the
// running executable when it is unset.
func (s stackEnv) WorkingFolder() string {
	var wd = os.Getenv(StackWorkingDir)
	// use default
	if wd == "" {
		cf, err := s.CurrentFolder()
		if err != nil {
			syslog.Fatal("unable to get working folder", err)
		}
		return cf
	}

	expanded, err := homedir.Expand(wd)
	if err != nil {
		syslog.Println("unable to expand working folder "+wd, err)
		return wd
	}

	return expanded
}

func (s stackEnv) LogLevel() string {
	var ll = os.Getenv(LogLevel)

	if ll == "" {
		return "Info"
	}

	return ll
}
