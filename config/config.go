package config

import (
	"github.com/pkg/errors"
)

const (
	JsonConfigFileName = "stack.json"
	StackWorkers       = "stack/workers"
	StackOps           = "stack/ops"
	StackMode          = "stack/mode"
	StackBackend       = "stack/backend"
	TraceEnabled       = "stack/traceEnabled"
)

var (
	ErrConfigNotLoaded = errors.New("config file was not loaded correctly or it does not exist")
)

// Config used to fetch config information
type Config interface {
	GetString(key string, defaultValue interface{}) string
	GetInt(key string, defaultValue interface{}) int
	GetBool(key string, defaultValue interface{}) bool
}

// Flags holds the command line values that feed NewMap
type Flags struct {
	Workers      int
	Ops          int
	Mode         string
	Backend      string
	TraceEnabled bool
}
