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
Package sysclock sets the system realtime clock, the other end of
hctosys. Set places the clock at an absolute time with clock_settime,
Step moves it by an offset with clock_adjtime.
*/
package sysclock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// clock_adjtime modes from usr/include/linux/timex.h
const (
	// add 'time' to current time
	AdjSetOffset uint32 = 0x0100
	// select nanosecond resolution
	AdjNano uint32 = 0x2000
)

// Set sets CLOCK_REALTIME to t. Needs CAP_SYS_TIME.
func Set(t time.Time) error {
	ts := unix.NsecToTimespec(t.UnixNano())
	if err := unix.ClockSettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return fmt.Errorf("setting system time to %v: %w", t, err)
	}
	return nil
}

// Step steps CLOCK_REALTIME by given step. Needs CAP_SYS_TIME.
func Step(step time.Duration) error {
	tx := &unix.Timex{}
	tx.Modes = AdjSetOffset | AdjNano
	sec := step / time.Second
	nsec := step % time.Second
	// the value of a timeval is the sum of its fields,
	// but with ADJ_NANO tv_usec holds nanoseconds and must be non-negative
	if nsec < 0 {
		sec--
		nsec += time.Second
	}
	setTime(tx, sec, nsec)
	// state is TIME_ERROR on any clock not disciplined by ntp, that's fine here
	if _, err := unix.ClockAdjtime(unix.CLOCK_REALTIME, tx); err != nil {
		return fmt.Errorf("stepping system time by %v: %w", step, err)
	}
	return nil
}
