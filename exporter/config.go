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

package exporter

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Defaults used by the daemon flags
const (
	DefaultMonitoringPort = 21040
	DefaultInterval       = 10 * time.Second
	DefaultSamples        = 1000
	maxSamples            = 1000000
)

// Config represents configuration we expect to read from file
type Config struct {
	MonitoringPort int           // port to serve /metrics on
	Interval       time.Duration // how often we read the clock and update metrics
	Samples        int           // back to back reads per collection to measure granularity, 0 disables
}

// EvalAndValidate makes sure config is valid
func (c *Config) EvalAndValidate() error {
	if c.MonitoringPort <= 0 || c.MonitoringPort > 65535 {
		return fmt.Errorf("bad config: 'monitoringport' must be between 1 and 65535")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("bad config: 'interval' must be positive")
	}
	if c.Samples < 0 || c.Samples > maxSamples {
		return fmt.Errorf("bad config: 'samples' must be between 0 and %d", maxSamples)
	}
	return nil
}

// ReadConfig reads config and unmarshals it from yaml into Config
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Config{}
	err = yaml.UnmarshalStrict(data, &c)
	return &c, err
}
