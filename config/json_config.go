package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/FleekHQ/space-stack/core/env"
	"github.com/FleekHQ/space-stack/log"
	"github.com/creamdog/gonfig"
	"github.com/pkg/errors"
)

// jsonConfig implements Config
// It loads its config information from the stack.json file
type jsonConfig struct {
	cfg gonfig.Gonfig
}

type defaultStackJson struct {
	Workers      int    `json:"workers"`
	Ops          int    `json:"ops"`
	Mode         string `json:"mode"`
	Backend      string `json:"backend"`
	TraceEnabled bool   `json:"traceEnabled"`
}

type defaultJson struct {
	Stack defaultStackJson `json:"stack"`
}

// NewJson reads stack.json from the env working folder. A missing or
// unreadable file is logged and every lookup falls back to its default.
func NewJson(env env.StackEnv) Config {
	wd := env.WorkingFolder()
	f, err := os.Open(filepath.Join(wd, JsonConfigFileName))
	if err != nil {
		log.Info("could not find " + JsonConfigFileName + " file in " + wd + ", using defaults")
		return jsonConfig{}
	}

	defer f.Close()
	config, err := gonfig.FromJson(f)
	if err != nil {
		log.Error("could not read "+JsonConfigFileName+" file, using defaults", err)
		return jsonConfig{}
	}

	c := jsonConfig{
		cfg: config,
	}

	return c
}

// Gets the configuration value given a path in the json config file
// defaults to defaultValue if none is found and just logs errors
func (c jsonConfig) GetString(key string, defaultValue interface{}) string {
	def, _ := defaultValue.(string)
	if c.cfg == nil {
		return def
	}
	v, err := c.cfg.GetString(key, defaultValue)
	if err != nil {
		log.Error(fmt.Sprintf("error getting key %s from config", key), err)
		return def
	}
	log.Debug("Getting conf " + key + ": " + v)

	return v
}

// Gets the configuration value given a path in the json config file
// defaults to defaultValue if none is found and just logs errors
func (c jsonConfig) GetInt(key string, defaultValue interface{}) int {
	def, _ := defaultValue.(int)
	if c.cfg == nil {
		return def
	}
	v, err := c.cfg.GetInt(key, defaultValue)
	if err != nil {
		log.Error(fmt.Sprintf("error getting key %s from config", key), err)
		return def
	}

	return v
}

// Gets the configuration value given a path in the json config file
// defaults to defaultValue if none is found and just logs errors
func (c jsonConfig) GetBool(key string, defaultValue interface{}) bool {
	def, _ := defaultValue.(bool)
	if c.cfg == nil {
		return def
	}
	v, err := c.cfg.GetBool(key, defaultValue)
	if err != nil {
		log.Error(fmt.Sprintf("error getting key %s from config", key), err)
		return def
	}

	return v
}

// CreateConfigJson writes a stack.json with default values into dir.
func CreateConfigJson(dir string) error {
	log.Info("Generating default config file", "dir:"+dir)
	finalJson := defaultJson{
		Stack: defaultStackJson{
			Workers: 4,
			Ops:     1000,
			Mode:    "mixed",
			Backend: "slice",
		},
	}

	marshalled, err := json.MarshalIndent(finalJson, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling default config")
	}

	jsonPath := filepath.Join(dir, JsonConfigFileName)
	if err := ioutil.WriteFile(jsonPath, marshalled, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", jsonPath)
	}

	log.Info("Default config file generated")

	return nil
}
