// Copyright (c) 2022 The rcproxy Authors
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

package config

import (
	"io/ioutil"
	"path"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"respd/internal/logging"
)

// Config is the process-level configuration: where to listen, where to
// expose the admin HTTP surface, and how to log. There is no backend
// Redis to dial, so unlike the reference proxy's config there is no
// redis block here.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	AdminAddr    string `yaml:"admin_addr"`
	LogPath      string `yaml:"log_path"`
	LogLevel     string `yaml:"log_level"`
	LogExpireDay int    `yaml:"log_expire_day"`

	path string
	name string
}

// Load reads and validates the YAML config at fileName and records its
// location. It does not watch the file itself; call Watch afterwards so
// LogLevel can be hot-reloaded without a restart.
func Load(fileName string) (*Config, error) {
	cfg, err := parse(fileName)
	if err != nil {
		return nil, err
	}
	cfg.path = path.Dir(fileName)
	cfg.name = fileName
	return cfg, nil
}

func parse(fileName string) (*Config, error) {
	file, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file from %s", fileName)
	}
	var cfg Config
	if err = yaml.Unmarshal(file, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", fileName)
	}
	if err = cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config validate failed")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, ok := logging.LevelMapperRev[c.LogLevel]; !ok {
		return errors.Errorf("unknown log level %s", c.LogLevel)
	}
	if c.ListenAddr == "" {
		return errors.Errorf("listen_addr must not be empty")
	}
	return nil
}

// Watch follows the config file for writes/renames and applies a new
// log level as it changes, without touching ListenAddr/AdminAddr: those
// are read once at startup, consistent with "no CLI flags, no env vars
// are defined by the core" (only log_level is live-reloadable).
func (c *Config) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create config watcher")
	}
	if err := watcher.Add(c.path); err != nil {
		return errors.Wrapf(err, "failed to watch %s", c.path)
	}
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != c.name {
					continue
				}
				if ev.Op&fsnotify.Write != fsnotify.Write && ev.Op&fsnotify.Rename != fsnotify.Rename {
					continue
				}
				reloaded, err := parse(c.name)
				if err != nil {
					logging.Errorf("config reload failed: %s", err)
					continue
				}
				if reloaded.LogLevel != c.LogLevel {
					c.LogLevel = reloaded.LogLevel
					logging.SetLevel(c.LogLevel)
					logging.Infof("log level reloaded to %s", c.LogLevel)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Errorf("config watcher error: %s", err)
			}
		}
	}()
	return nil
}
