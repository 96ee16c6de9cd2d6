//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the lined settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"

	// NoLog disables the log file.
	NoLog = "-"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Backend   string   `yaml:"backend"`
	LogFile   string   `yaml:"log_file"`
	QuitRunes []string `yaml:"quit_runes"`
}

// DefaultPath is $HOME/.lined.yaml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".lined.yaml")
}

func Default() *Config {
	return &Config{
		Backend: BackendTermbox,
		LogFile: filepath.Join(os.Getenv("HOME"), ".linedlog"),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTermbox, BackendTcell:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	for _, s := range c.QuitRunes {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("%w: quit rune %q is not a single character", ErrInvalid, s)
		}
	}
	return nil
}

// Quit returns the configured quit runes.
func (c *Config) Quit() []rune {
	runes := make([]rune, 0, len(c.QuitRunes))
	for _, s := range c.QuitRunes {
		r, _ := utf8.DecodeRuneInString(s)
		runes = append(runes, r)
	}
	return runes
}
