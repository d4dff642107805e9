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
	"encoding/binary"
	"fmt"
	"unsafe"
)

// EpochYear is the base of RTCTime.Year: a Year of 118 is 2018.
const EpochYear = 1900

// Defined in Linux include/uapi/linux/rtc.h
const (
	rtcIocMagic  = 'p'
	rtcRdTimeNr  = 0x09
	rtcSetTimeNr = 0x0a
)

// SizeofRTCTime is the size of struct rtc_time the kernel expects
const SizeofRTCTime = 36

const alignofRTCTime = 4

// RTCTime as defined in linux/rtc.h.
// Field order and types are the kernel ABI, don't touch them.
type RTCTime struct {
	Sec   int32 // 0-59
	Min   int32 // 0-59
	Hour  int32 // 0-23
	Mday  int32 // day of the month, 1-31
	Mon   int32 // months since January, 0-11
	Year  int32 // years since EpochYear
	Wday  int32 // unused, 0
	Yday  int32 // unused, 0
	Isdst int32 // unused, 0
}

// fail to compile if RTCTime ever stops matching struct rtc_time
var (
	_ [unsafe.Sizeof(RTCTime{}) - SizeofRTCTime]struct{}
	_ [SizeofRTCTime - unsafe.Sizeof(RTCTime{})]struct{}
	_ [unsafe.Alignof(RTCTime{}) - alignofRTCTime]struct{}
	_ [alignofRTCTime - unsafe.Alignof(RTCTime{})]struct{}
)

func (t *RTCTime) fields() [9]*int32 {
	return [9]*int32{&t.Sec, &t.Min, &t.Hour, &t.Mday, &t.Mon, &t.Year, &t.Wday, &t.Yday, &t.Isdst}
}

// String renders raw fields as a date, without any validation
func (t RTCTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		int64(t.Year)+EpochYear, t.Mon+1, t.Mday, t.Hour, t.Min, t.Sec,
	)
}

// MarshalBinary returns struct rtc_time bytes in host byte order,
// exactly as the kernel sees them
func (t RTCTime) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, SizeofRTCTime)
	for _, f := range t.fields() {
		b = binary.NativeEndian.AppendUint32(b, uint32(*f))
	}
	return b, nil
}

// UnmarshalBinary is the inverse of MarshalBinary
func (t *RTCTime) UnmarshalBinary(b []byte) error {
	if len(b) != SizeofRTCTime {
		return fmt.Errorf("struct rtc_time is %d bytes, got %d", SizeofRTCTime, len(b))
	}
	for i, f := range t.fields() {
		*f = int32(binary.NativeEndian.Uint32(b[i*4:]))
	}
	return nil
}
