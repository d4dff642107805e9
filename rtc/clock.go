//go:build linux

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
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// timeNow is replaced in tests
var timeNow = time.Now

// ReadCalendar reads the hardware clock as UTC time.Time
func ReadCalendar(dev DeviceController) (time.Time, error) {
	raw, err := dev.ReadTime()
	if err != nil {
		return time.Time{}, err
	}
	log.Debugf("read rtc_time %+v", raw)
	return ToCalendar(raw)
}

// WriteCalendar sets the hardware clock to t, truncated to the second
func WriteCalendar(dev DeviceController, t time.Time) error {
	raw := FromTime(t)
	log.Debugf("writing rtc_time %+v", raw)
	return dev.WriteTime(&raw)
}

// Step moves the hardware clock by step and returns the time it was set to
func Step(dev DeviceController, step time.Duration) (time.Time, error) {
	current, err := ReadCalendar(dev)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading rtc before step: %w", err)
	}
	next := current.Add(step).Truncate(time.Second)
	if err := WriteCalendar(dev, next); err != nil {
		return time.Time{}, fmt.Errorf("stepping rtc by %v: %w", step, err)
	}
	return next, nil
}

// SystemOffset reads the hardware clock and returns its time
// together with the offset RTC minus system time.
// System time is truncated to the second, same as the RTC.
func SystemOffset(dev DeviceController) (time.Time, time.Duration, error) {
	rtcTime, err := ReadCalendar(dev)
	if err != nil {
		return time.Time{}, 0, err
	}
	sysTime := timeNow().UTC().Truncate(time.Second)
	offset := rtcTime.Sub(sysTime)
	log.Debugf("rtc %v, system %v, offset %v", rtcTime, sysTime, offset)
	return rtcTime, offset, nil
}
