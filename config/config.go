// Package config provides the structures used for configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/tempconv/config/secrets"
	"github.com/lone-faerie/tempconv/log"
)

// Config contains the configuration for printing conversions, logging and
// the optional MQTT sink. Config should be created with a call to [Default],
// [Read], or [Load] so that environment variables and secrets are expanded.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log,omitempty"`
	MQTT   MQTTConfig   `yaml:"mqtt,omitempty"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	// QuoteErrors wraps the message of a parse error in double quotes,
	// e.g. `ParseError: 10CC, "scale unknown"`. The default is true.
	QuoteErrors bool `yaml:"quote_errors"`
}

// LogConfig is the configuration for the logger.
type LogConfig struct {
	Level log.Level `yaml:"level"`
	// Output is one of "stderr" (default), "stdout", "discard" or a file path.
	Output string `yaml:"output"`
	// Format is either "text" (default) or "json".
	Format string `yaml:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Output: OutputConfig{QuoteErrors: true},
		Log: LogConfig{
			Level:  log.LevelWarn,
			Output: "stderr",
			Format: "text",
		},
		MQTT: DefaultMQTT,
	}
}

// Default returns the default Config when no config file is provided.
func Default() *Config {
	cfg := defaultConfig()
	cfg.Expand()
	return cfg
}

// Read returns the Config parsed from the yaml encoded config from r,
// layered over the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := defaultConfig()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	cfg.Expand()
	return cfg, nil
}

// Load returns the Config parsed from the given yaml files, each one layered
// over the previous. Files that do not exist are skipped. If a path is a
// directory, every .yaml or .yml file in it is read in lexical order.
func Load(file ...string) (*Config, error) {
	log.Info("Loading config", "path", file)
	cfg := defaultConfig()
	for _, name := range file {
		paths, err := expandPath(name)
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("Config not found", "path", name)
			continue
		} else if err != nil {
			return nil, err
		}
		for _, path := range paths {
			if err := cfg.decodeFile(path); err != nil {
				return nil, err
			}
		}
	}
	cfg.Expand()
	return cfg, nil
}

func expandPath(name string) ([]string, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{name}, nil
	}
	entries, err := os.ReadDir(name)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(name, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

func (cfg *Config) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = cfg.decode(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (cfg *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	for {
		err := dec.Decode(cfg)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}

// Expand replaces ${var} or $var in s according to the values of
// the current environment variables, and replaces !secret var according
// to the file at /run/secrets/<var>.
func Expand(s string) string {
	if secret, ok := secrets.CutPrefix(s); ok {
		return secrets.MustRead(secret, "")
	}
	return os.ExpandEnv(s)
}

func expandValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(Expand(v.String()))
		}
	case reflect.Struct:
		n := v.NumField()
		for i := 0; i < n; i++ {
			expandValue(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		n := v.Len()
		for i := 0; i < n; i++ {
			expandValue(v.Index(i))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			expandValue(v.Elem())
		}
	}
}

// Expand calls [Expand] on every string field of cfg.
func (cfg *Config) Expand() {
	expandValue(reflect.ValueOf(cfg).Elem())
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
}
