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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// overridden in tests
var (
	sysfsRoot = "/sys/class/rtc"
	devRoot   = "/dev"
)

// DeviceInfo describes an RTC device as seen in sysfs
type DeviceInfo struct {
	Device  string // path to the character device, e.g. /dev/rtc0
	Name    string // driver name, e.g. rtc_cmos
	HCToSys bool   // kernel sets system time from this RTC on boot
}

// Devices lists RTC devices registered with the kernel
func Devices() ([]DeviceInfo, error) {
	entries, err := os.ReadDir(sysfsRoot)
	if errors.Is(err, fs.ErrNotExist) {
		return []DeviceInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", sysfsRoot, err)
	}
	res := []DeviceInfo{}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "rtc") {
			continue
		}
		dir := filepath.Join(sysfsRoot, e.Name())
		name, err := readAttr(dir, "name")
		if err != nil {
			return nil, err
		}
		// hctosys is missing on old kernels
		hctosys, _ := readAttr(dir, "hctosys")
		res = append(res, DeviceInfo{
			Device:  filepath.Join(devRoot, e.Name()),
			Name:    name,
			HCToSys: hctosys == "1",
		})
	}
	// rtc2 before rtc10
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i].Device, res[j].Device
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return res, nil
}

func readAttr(dir, attr string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, attr))
	if err != nil {
		return "", fmt.Errorf("reading rtc attribute: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
