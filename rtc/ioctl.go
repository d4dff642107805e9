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
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctlRTCRdTime is RTC_RD_TIME, read the RTC into struct rtc_time
const ioctlRTCRdTime = uint(unix.RTC_RD_TIME)

// ioctlRTCSetTime is RTC_SET_TIME, set the RTC from struct rtc_time
const ioctlRTCSetTime = uint(unix.RTC_SET_TIME)

// ioctlPtr returns both the raw result and errno, callers need r1 as well:
// RTC ioctls are expected to return exactly 0
func ioctlPtr(fd uintptr, req uint, arg unsafe.Pointer) (uintptr, unix.Errno) {
	r1, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), uintptr(arg))
	return r1, errno
}
