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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// Mon Feb 19 14:06:01 UTC 2018
var reference = RTCTime{Sec: 1, Min: 6, Hour: 14, Mday: 19, Mon: 1, Year: 118}

func TestRTCTimeLayout(t *testing.T) {
	rt := RTCTime{}
	require.Equal(t, uintptr(36), unsafe.Sizeof(rt))
	require.Equal(t, uintptr(4), unsafe.Alignof(rt))
	offsets := []uintptr{
		unsafe.Offsetof(rt.Sec),
		unsafe.Offsetof(rt.Min),
		unsafe.Offsetof(rt.Hour),
		unsafe.Offsetof(rt.Mday),
		unsafe.Offsetof(rt.Mon),
		unsafe.Offsetof(rt.Year),
		unsafe.Offsetof(rt.Wday),
		unsafe.Offsetof(rt.Yday),
		unsafe.Offsetof(rt.Isdst),
	}
	for i, o := range offsets {
		require.Equal(t, uintptr(i*4), o, "field %d", i)
	}
}

func TestRTCTimeZeroValue(t *testing.T) {
	rt := RTCTime{}
	require.Equal(t, "1900-01-00 00:00:00", rt.String())
	b, err := rt.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, make([]byte, SizeofRTCTime), b)
}

func TestRTCTimeString(t *testing.T) {
	require.Equal(t, "2018-02-19 14:06:01", reference.String())
	require.Equal(t, "1850-12-31 23:59:59", RTCTime{Sec: 59, Min: 59, Hour: 23, Mday: 31, Mon: 11, Year: -50}.String())
}

func TestMarshalBinaryMatchesMemory(t *testing.T) {
	rt := reference
	rt.Wday = 1
	rt.Yday = 49
	b, err := rt.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, SizeofRTCTime)
	mem := unsafe.Slice((*byte)(unsafe.Pointer(&rt)), SizeofRTCTime)
	require.Equal(t, mem, b)
}

func TestUnmarshalBinary(t *testing.T) {
	b, err := reference.MarshalBinary()
	require.NoError(t, err)
	got := RTCTime{}
	require.NoError(t, got.UnmarshalBinary(b))
	require.Equal(t, reference, got)

	err = got.UnmarshalBinary(b[:SizeofRTCTime-1])
	require.EqualError(t, err, "struct rtc_time is 36 bytes, got 35")
}
