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

/*
Package rtc is a thin wrapper around the Linux RTC character device
(/dev/rtc0, /dev/rtc1, ...) and its RTC_RD_TIME / RTC_SET_TIME ioctls.

RTCTime mirrors the kernel's struct rtc_time byte for byte and is what gets
handed to the kernel. ToCalendar and FromCalendar convert it from and to
time.Time. The hardware clock is assumed to be kept in UTC, and its
resolution is one second: anything finer is discarded without rounding.

	dev, err := rtc.Open("/dev/rtc0")
	if err != nil {
		return err
	}
	defer dev.Close()

	raw, err := dev.ReadTime()
	if err != nil {
		return err
	}
	t, err := rtc.ToCalendar(raw)
	if err != nil {
		return err
	}
	next := rtc.FromTime(t.Add(30 * time.Second))
	return dev.WriteTime(&next)
*/
package rtc
