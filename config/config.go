// Package config defines the on-disk configuration of the steering controller.
package config

import (
	"github.com/pkg/errors"

	"github.com/roarracing/purepursuit/control"
	"github.com/roarracing/purepursuit/logging"
	"github.com/roarracing/purepursuit/utils"
)

// Config describes how to set up the steering controller.
type Config struct {
	ConfigFilePath string `json:"-"`

	// Controller holds the pure pursuit attributes. Any mapping is accepted.
	Controller utils.AttributeMap `json:"controller,omitempty"`
	// Blocks optionally wires the controller into a block graph.
	Blocks   []control.BlockConfig `json:"blocks,omitempty"`
	LogLevel string                `json:"log_level,omitempty"`
	Debug    bool                  `json:"debug,omitempty"`
}

// Ensure validates the parts of the config that can be wrong. The controller attributes
// are never rejected.
func (c *Config) Ensure() error {
	if c.LogLevel != "" {
		if _, err := logging.LevelFromString(c.LogLevel); err != nil {
			return errors.Wrap(err, "log_level")
		}
	}
	for idx, b := range c.Blocks {
		if b.Name == "" {
			return errors.Errorf("blocks.%d: name is required", idx)
		}
	}
	if _, err := control.SortBlocks(c.Blocks); err != nil {
		return errors.Wrap(err, "blocks")
	}
	return nil
}

// Level returns the log level the config asks for. Debug wins over log_level.
func (c *Config) Level() logging.Level {
	if c.Debug {
		return logging.DEBUG
	}
	level, err := logging.LevelFromString(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}
