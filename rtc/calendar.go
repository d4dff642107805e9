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
	"math"
	"time"
)

// Calendar is all the conversion needs from a calendar value.
// time.Time implements it.
type Calendar interface {
	Date() (year int, month time.Month, day int)
	Clock() (hour, min, sec int)
}

// ToCalendar converts raw RTC time to UTC time.Time.
// Fields are never normalized: anything out of range is a *DateError.
func ToCalendar(t RTCTime) (time.Time, error) {
	if err := validate(t); err != nil {
		return time.Time{}, err
	}
	return time.Date(
		int(calendarYear(t.Year)),
		time.Month(t.Mon+1), // Mon is zero-based
		int(t.Mday),         // Mday is not
		int(t.Hour),
		int(t.Min),
		int(t.Sec),
		0,
		time.UTC,
	), nil
}

// Time is the same as ToCalendar
func (t RTCTime) Time() (time.Time, error) {
	return ToCalendar(t)
}

// FromCalendar converts calendar value to raw RTC time.
// Fractions of a second are discarded, unused fields are zero.
func FromCalendar(c Calendar) RTCTime {
	year, month, day := c.Date()
	hour, minute, sec := c.Clock()
	return RTCTime{
		Sec:  int32(sec),
		Min:  int32(minute),
		Hour: int32(hour),
		Mday: int32(day),
		Mon:  int32(month) - 1,
		Year: int32(year - EpochYear),
	}
}

// FromTime converts t to UTC and then to raw RTC time
func FromTime(t time.Time) RTCTime {
	return FromCalendar(t.UTC())
}

// calendarYear doesn't overflow where int is 32 bits
func calendarYear(year int32) int64 {
	return int64(year) + EpochYear
}

func validate(t RTCTime) error {
	if y := calendarYear(t.Year); y > math.MaxInt || y < math.MinInt {
		return &DateError{Time: t, Field: "year", Value: t.Year}
	}
	if t.Mon < 0 || t.Mon > 11 {
		return &DateError{Time: t, Field: "mon", Value: t.Mon}
	}
	if t.Mday < 1 || t.Mday > daysIn(int(calendarYear(t.Year)), time.Month(t.Mon+1)) {
		return &DateError{Time: t, Field: "mday", Value: t.Mday}
	}
	if t.Hour < 0 || t.Hour > 23 {
		return &DateError{Time: t, Field: "hour", Value: t.Hour}
	}
	if t.Min < 0 || t.Min > 59 {
		return &DateError{Time: t, Field: "min", Value: t.Min}
	}
	if t.Sec < 0 || t.Sec > 59 {
		return &DateError{Time: t, Field: "sec", Value: t.Sec}
	}
	return nil
}

func daysIn(year int, month time.Month) int32 {
	// day 0 of the next month is the last day of this one
	return int32(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day())
}
