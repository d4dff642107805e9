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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "hwclock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, "device: /dev/rtc1\ninterval: 30s\n")
	c, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, &Config{
		Device:        "/dev/rtc1",
		Interval:      30 * time.Second,
		ListenAddress: ":9719",
	}, c)
}

func TestReadConfigUnknownField(t *testing.T) {
	path := writeConfig(t, "device: /dev/rtc1\nlol: 1\n")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigInvalid(t *testing.T) {
	path := writeConfig(t, "interval: 100ms\n")
	_, err := ReadConfig(path)
	require.EqualError(t, err, "bad config: 'interval' must be at least a second, rtc resolution is one second")
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.Device = ""
	require.EqualError(t, c.Validate(), "bad config: 'device' must be specified")

	c = DefaultConfig()
	c.Interval = 2 * time.Hour
	require.EqualError(t, c.Validate(), "bad config: 'interval' is over an hour")

	c = DefaultConfig()
	c.ListenAddress = ""
	require.EqualError(t, c.Validate(), "bad config: 'listenaddress' must be specified")
}
