// Package config loads the settings of the rational command from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/govalues/rational"
	"github.com/govalues/rational/internal/logger"
	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0"

	DefaultPrecision = 16
	DefaultLogLevel  = logger.INFO
)

type Custom struct {
	Expand struct {
		Precision int
	}
	Log struct {
		Level   int    `toml:"level" default:"2"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	}
}

// Default returns the settings used when no file is given.
func Default() *Custom {
	var c Custom
	c.Expand.Precision = DefaultPrecision
	c.Log.Level = DefaultLogLevel
	return &c
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(f)
}

// Parse decodes TOML settings, keeping defaults for missing values.
//
//	[expand]
//	precision = 16
//
//	[log]
//	level = 3
//	filter = "expand"
//	limiter = 100
//
// The precision is checked with [rational.ParsePrecision], so non-integer
// and negative digit counts are rejected.
func Parse(data []byte) (*Custom, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	config := Default()

	if v := tree.Get("expand.precision"); v != nil {
		prec, err := rational.ParsePrecision(fmt.Sprint(v))
		if err != nil {
			return nil, fmt.Errorf("expand.precision: %w", err)
		}
		config.Expand.Precision = prec
	}

	if sub, ok := tree.Get("log").(*toml.Tree); ok {
		err = sub.Unmarshal(&config.Log)
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
	}
	if config.Log.Level == 0 {
		config.Log.Level = DefaultLogLevel
	}
	return config, nil
}
