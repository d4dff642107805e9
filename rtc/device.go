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
	"os"
	"runtime"
	"unsafe"
)

//go:generate mockgen -source device.go -destination mock_device.go -package rtc -build_constraint linux

// DeviceController defines available RTC device operations
type DeviceController interface {
	ReadTime() (RTCTime, error)
	WriteTime(t *RTCTime) error
	File() *os.File
}

// Device represents an open RTC character device
type Device os.File

// Open opens the RTC device at path.
// The device stays open until Close is called.
func Open(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if fi.Mode()&os.ModeCharDevice == 0 {
		f.Close()
		return nil, &OpenError{Path: path, Err: ErrNotCharDevice}
	}
	return FromFile(f), nil
}

// FromFile returns a *Device corresponding to an *os.File
func FromFile(file *os.File) *Device { return (*Device)(file) }

// File returns the underlying *os.File
func (dev *Device) File() *os.File { return (*os.File)(dev) }

// Fd returns the underlying file descriptor
func (dev *Device) Fd() uintptr { return dev.File().Fd() }

// Name returns the device name
func (dev *Device) Name() string { return dev.File().Name() }

func (dev *Device) String() string { return dev.Name() }

// Close closes the device
func (dev *Device) Close() error { return dev.File().Close() }

// ReadTime reads the hardware clock
func (dev *Device) ReadTime() (RTCTime, error) {
	t := RTCTime{}
	if err := dev.ioctl("RTC_RD_TIME", ioctlRTCRdTime, &t); err != nil {
		return RTCTime{}, err
	}
	return t, nil
}

// WriteTime sets the hardware clock. Needs CAP_SYS_TIME.
func (dev *Device) WriteTime(t *RTCTime) error {
	return dev.ioctl("RTC_SET_TIME", ioctlRTCSetTime, t)
}

func (dev *Device) ioctl(op string, req uint, t *RTCTime) error {
	r, errno := ioctlPtr(dev.Fd(), req, unsafe.Pointer(t))
	runtime.KeepAlive(dev)
	if errno != 0 || r != 0 {
		return &IoctlError{Op: op, Ret: int(r), Errno: errno}
	}
	return nil
}
