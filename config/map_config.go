package config

type mapConfig struct {
	configStr  map[string]string
	configInt  map[string]int
	configBool map[string]bool
}

func NewMap(flags *Flags) Config {
	configStr := make(map[string]string)
	configInt := make(map[string]int)
	configBool := make(map[string]bool)

	// default values
	configStr[StackMode] = "mixed"
	configStr[StackBackend] = "slice"
	configInt[StackWorkers] = 4
	configInt[StackOps] = 1000
	configBool[TraceEnabled] = false

	if flags != nil {
		if flags.Workers > 0 {
			configInt[StackWorkers] = flags.Workers
		}
		if flags.Ops > 0 {
			configInt[StackOps] = flags.Ops
		}
		if flags.Mode != "" {
			configStr[StackMode] = flags.Mode
		}
		if flags.Backend != "" {
			configStr[StackBackend] = flags.Backend
		}
		configBool[TraceEnabled] = flags.TraceEnabled
	}

	c := mapConfig{
		configStr:  configStr,
		configInt:  configInt,
		configBool: configBool,
	}

	return c
}

func (m mapConfig) GetString(key string, defaultValue interface{}) string {
	if val, exists := m.configStr[key]; exists {
		return val
	}

	if stringValue, ok := defaultValue.(string); ok {
		return stringValue
	}

	return ""
}

func (m mapConfig) GetInt(key string, defaultValue interface{}) int {
	if val, exists := m.configInt[key]; exists {
		return val
	}

	if intVal, ok := defaultValue.(int); ok {
		return intVal
	}

	return 0
}

func (m mapConfig) GetBool(key string, defaultValue interface{}) bool {
	if val, exists := m.configBool[key]; exists {
		return val
	}

	if boolVal, ok := defaultValue.(bool); ok {
		return boolVal
	}

	return false
}
