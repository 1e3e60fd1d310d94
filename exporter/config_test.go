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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEvalAndValidate(t *testing.T) {
	c := &Config{}
	require.Equal(t, fmt.Errorf("bad config: 'monitoringport' must be between 1 and 65535"), c.EvalAndValidate())

	c.MonitoringPort = 70000
	require.Equal(t, fmt.Errorf("bad config: 'monitoringport' must be between 1 and 65535"), c.EvalAndValidate())

	c.MonitoringPort = DefaultMonitoringPort
	require.Equal(t, fmt.Errorf("bad config: 'interval' must be positive"), c.EvalAndValidate())

	c.Interval = time.Second
	c.Samples = -1
	require.Equal(t, fmt.Errorf("bad config: 'samples' must be between 0 and 1000000"), c.EvalAndValidate())

	c.Samples = 0
	require.NoError(t, c.EvalAndValidate())
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallclock.yaml")
	err := os.WriteFile(path, []byte("monitoringport: 4269\ninterval: 5s\nsamples: 10\n"), 0644)
	require.NoError(t, err)

	c, err := ReadConfig(path)
	require.NoError(t, err)
	want := &Config{MonitoringPort: 4269, Interval: 5 * time.Second, Samples: 10}
	require.Equal(t, want, c)
	require.NoError(t, c.EvalAndValidate())
}

func TestReadConfigStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallclock.yaml")
	err := os.WriteFile(path, []byte("monitoringport: 4269\nsomething: 1\n"), 0644)
	require.NoError(t, err)

	_, err = ReadConfig(path)
	require.Error(t, err)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
