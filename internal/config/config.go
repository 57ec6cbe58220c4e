// This file is part of llama - https://github.com/Renelvon/llama
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the llamart configuration.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Environment overrides, applied after the configuration file.
const (
	EnvLogLevel   = "LLAMART_LOG_LEVEL"
	EnvLogNoColor = "LLAMART_LOG_NOCOLOR"
	EnvDrainLines = "LLAMART_DRAIN_LINES"
)

// Config holds the runtime settings of llamart.
type Config struct {
	// DrainLines makes read_string discard the rest of overlong lines.
	DrainLines bool
	// Raw switches a terminal stdin to raw mode while running a script.
	Raw bool
	// Debug adds stack traces to fatal diagnostics.
	Debug    bool
	LogLevel zerolog.Level
	NoColor  bool
}

// Default returns the default configuration.
func Default() Config {
	return Config{LogLevel: zerolog.WarnLevel}
}

type fileConfig struct {
	DrainLines bool   `toml:"drain_lines"`
	Raw        bool   `toml:"raw"`
	Debug      bool   `toml:"debug"`
	LogLevel   string `toml:"log_level"`
	NoColor    bool   `toml:"no_color"`
}

// Load reads the TOML file at path over the default configuration. An empty
// path returns the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return Config{}, errors.Errorf("load config: unknown key %q", keys[0].String())
	}

	if meta.IsDefined("drain_lines") {
		cfg.DrainLines = raw.DrainLines
	}
	if meta.IsDefined("raw") {
		cfg.Raw = raw.Raw
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	if meta.IsDefined("log_level") {
		lvl, err := ParseLevel(raw.LogLevel)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse log_level")
		}
		cfg.LogLevel = lvl
	}
	if meta.IsDefined("no_color") {
		cfg.NoColor = raw.NoColor
	}
	return cfg, nil
}

// ApplyEnv applies the environment overrides to cfg. Invalid values are
// ignored.
func ApplyEnv(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv(EnvLogLevel)); raw != "" {
		if lvl, err := ParseLevel(raw); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvDrainLines)); ok {
		cfg.DrainLines = v
	}
}

// ParseLevel parses a log level name. "off" and "none" disable logging.
func ParseLevel(s string) (zerolog.Level, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "off", "none", "disabled":
		return zerolog.Disabled, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(s)
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
