// Copyright (c) 2024, The Mash Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dylanmckay/mash/base/fsx"
	"github.com/dylanmckay/mash/base/iox/tomlx"
	"github.com/dylanmckay/mash/base/iox/yamlx"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is the name of the config file that is looked
// for on [Config.IncludePaths].
const DefaultConfigFile = "mash.toml"

// Config holds the settings of the mash command.
type Config struct {
	// IndexBits is the width in bits of the mesh indices:
	// 8, 16, 32 or 64.
	IndexBits int `default:"32" toml:"index_bits" yaml:"index_bits"`

	// Filter keeps only the objects whose name contains it.
	Filter string `toml:"filter" yaml:"filter"`

	// Every keeps only every n-th triangle when deduplicating.
	Every int `default:"1" toml:"every" yaml:"every"`

	// IncludePaths are the directories searched for [DefaultConfigFile],
	// in increasing order of precedence.
	IncludePaths []string `default:"~/.config/mash, ." toml:"include_paths" yaml:"include_paths"`
}

// Validate returns an error if the config has invalid settings.
func (c *Config) Validate() error {
	switch c.IndexBits {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("invalid index bits %d: must be 8, 16, 32 or 64", c.IndexBits)
	}
	if c.Every < 1 {
		return fmt.Errorf("invalid every %d: must be at least 1", c.Every)
	}
	return nil
}

// openConfig reads the config file at the given path, decoding
// it as TOML or YAML according to its extension.
func openConfig(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlx.Open(cfg, path)
	case ".yaml", ".yml":
		return yamlx.Open(cfg, path)
	default:
		return fmt.Errorf("config file %s: unknown extension, must be .toml, .yaml or .yml", path)
	}
}

// saveConfig writes cfg to the given path, encoding it as TOML
// or YAML according to its extension.
func saveConfig(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlx.Save(cfg, path)
	case ".yaml", ".yml":
		return yamlx.Save(cfg, path)
	default:
		return fmt.Errorf("config file %s: unknown extension, must be .toml, .yaml or .yml", path)
	}
}

// loadConfig reads the config files into cfg. If file is empty, the
// [DefaultConfigFile] is looked for on the include paths; otherwise
// only the given file is read. The flags that were set on the command
// line are then applied again, so that they override the files.
func loadConfig(cfg *Config, file string, flags *pflag.FlagSet) error {
	changed := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	if file != "" {
		if err := openConfig(cfg, file); err != nil {
			return err
		}
		slog.Info("read config", "file", file)
	} else if files := fsx.FindFilesOnPaths(cfg.IncludePaths, DefaultConfigFile); len(files) > 0 {
		if err := tomlx.OpenFiles(cfg, files...); err != nil {
			return err
		}
		slog.Info("read config", "files", files)
	}

	for name, val := range changed {
		if err := flags.Set(name, val); err != nil {
			return err
		}
	}
	return cfg.Validate()
}
