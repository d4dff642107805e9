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

	"golang.org/x/sys/unix"
)

// ErrInvalidDate is matched by every DateError
var ErrInvalidDate = errors.New("invalid rtc date")

// ErrNotCharDevice is returned when the opened path is not a character device
var ErrNotCharDevice = errors.New("not a character device")

// OpenError is returned when an RTC device can't be opened
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening rtc device %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// IoctlError is returned when RTC_RD_TIME or RTC_SET_TIME fails.
// Ret is the raw ioctl result, Errno is what the kernel reported.
type IoctlError struct {
	Op    string
	Ret   int
	Errno unix.Errno
}

func (e *IoctlError) Error() string {
	if e.Errno == 0 {
		return fmt.Sprintf("%s ioctl returned %d", e.Op, e.Ret)
	}
	return fmt.Sprintf("%s ioctl failed: %v", e.Op, e.Errno)
}

// Unwrap returns nil when the kernel reported no errno
func (e *IoctlError) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}
	return e.Errno
}

// DateError is returned when RTCTime fields don't form a valid date
type DateError struct {
	Time  RTCTime
	Field string
	Value int32
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%v: %s %s=%d is out of range", ErrInvalidDate, e.Time, e.Field, e.Value)
}

// Is makes errors.Is(err, ErrInvalidDate) work
func (e *DateError) Is(target error) bool {
	return target == ErrInvalidDate
}
