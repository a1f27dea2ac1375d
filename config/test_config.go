package config

// TestConfig is an easily mockable config that can be used in tests
type TestConfig struct {
	config map[string]interface{}
}

func NewTestConfig(config map[string]interface{}) Config {
	return &TestConfig{
		config: config,
	}
}

func (c *TestConfig) GetString(key string, defaultValue interface{}) string {
	if v, ok := c.config[key].(string); ok {
		return v
	}
	s, _ := defaultValue.(string)
	return s
}

func (c *TestConfig) GetInt(key string, defaultValue interface{}) int {
	if v, ok := c.config[key].(int); ok {
		return v
	}
	i, _ := defaultValue.(int)
	return i
}

func (c *TestConfig) GetBool(key string, defaultValue interface{}) bool {
	if v, ok := c.config[key].(bool); ok {
		return v
	}
	b, _ := defaultValue.(bool)
	return b
}
