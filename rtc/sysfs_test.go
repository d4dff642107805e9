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

package rtc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRTCAttrs(t *testing.T, root, dev string, attrs map[string]string) {
	dir := filepath.Join(root, dev)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for k, v := range attrs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, k), []byte(v+"\n"), 0o644))
	}
}

func TestDevices(t *testing.T) {
	root := t.TempDir()
	defer func(old string) { sysfsRoot = old }(sysfsRoot)
	sysfsRoot = root

	writeRTCAttrs(t, root, "rtc0", map[string]string{"name": "rtc_cmos", "hctosys": "1"})
	writeRTCAttrs(t, root, "rtc10", map[string]string{"name": "ptp_ocp", "hctosys": "0"})
	writeRTCAttrs(t, root, "rtc2", map[string]string{"name": "rtc-ds1307"})
	writeRTCAttrs(t, root, "power", map[string]string{"name": "ignored"})

	got, err := Devices()
	require.NoError(t, err)
	require.Equal(t, []DeviceInfo{
		{Device: "/dev/rtc0", Name: "rtc_cmos", HCToSys: true},
		{Device: "/dev/rtc2", Name: "rtc-ds1307"},
		{Device: "/dev/rtc10", Name: "ptp_ocp"},
	}, got)
}

func TestDevicesNoSysfs(t *testing.T) {
	defer func(old string) { sysfsRoot = old }(sysfsRoot)
	sysfsRoot = filepath.Join(t.TempDir(), "nope")

	got, err := Devices()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDevicesMissingName(t *testing.T) {
	root := t.TempDir()
	defer func(old string) { sysfsRoot = old }(sysfsRoot)
	sysfsRoot = root
	writeRTCAttrs(t, root, "rtc0", map[string]string{"hctosys": "1"})

	_, err := Devices()
	require.Error(t, err)
}
