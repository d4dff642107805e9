/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stats

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config represents configuration we expect to read from file
type Config struct {
	Device        string        // rtc device to read, e.g. /dev/rtc0
	Interval      time.Duration // how often do we read the rtc
	ListenAddress string        // where /metrics is served
}

// DefaultConfig returns Config with all defaults set
func DefaultConfig() *Config {
	return &Config{
		Device:        "/dev/rtc0",
		Interval:      10 * time.Second,
		ListenAddress: ":9719",
	}
}

// Validate makes sure config is valid
func (c *Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("bad config: 'device' must be specified")
	}
	if c.Interval < time.Second {
		return fmt.Errorf("bad config: 'interval' must be at least a second, rtc resolution is one second")
	}
	if c.Interval > time.Hour {
		return fmt.Errorf("bad config: 'interval' is over an hour")
	}
	if c.ListenAddress == "" {
		return fmt.Errorf("bad config: 'listenaddress' must be specified")
	}
	return nil
}

// ReadConfig reads config from yaml on top of defaults and validates it
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
