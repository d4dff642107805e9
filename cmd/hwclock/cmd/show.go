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

package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/hwclock/rtc"
)

// flags
var showRawFlag bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print hardware clock time and its offset from system time",
	Run:   runShowCmd,
}

func init() {
	RootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVarP(&showRawFlag, "raw", "r", false, "also print raw struct rtc_time as returned by the kernel")
}

func runShowCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if err := showRTC(rootDeviceFlag, showRawFlag); err != nil {
		log.Fatal(err)
	}
}

func showRTC(device string, raw bool) error {
	dev, err := rtc.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	if raw {
		rawTime, err := dev.ReadTime()
		if err != nil {
			return err
		}
		if err := printRaw(os.Stdout, rawTime); err != nil {
			return err
		}
	}
	rtcTime, offset, err := rtc.SystemOffset(dev)
	if err != nil {
		return err
	}
	fmt.Printf("RTC time: %v\n", rtcTime)
	fmt.Printf("System time: %v\n", rtcTime.Add(-offset))
	fmt.Printf("Offset (rtc - system): %v\n", offset)
	return nil
}

func printRaw(w io.Writer, t rtc.RTCTime) error {
	b, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "tm_sec:   %d\n", t.Sec)
	fmt.Fprintf(w, "tm_min:   %d\n", t.Min)
	fmt.Fprintf(w, "tm_hour:  %d\n", t.Hour)
	fmt.Fprintf(w, "tm_mday:  %d\n", t.Mday)
	fmt.Fprintf(w, "tm_mon:   %d\n", t.Mon)
	fmt.Fprintf(w, "tm_year:  %d\n", t.Year)
	fmt.Fprintf(w, "tm_wday:  %d\n", t.Wday)
	fmt.Fprintf(w, "tm_yday:  %d\n", t.Yday)
	fmt.Fprintf(w, "tm_isdst: %d\n", t.Isdst)
	fmt.Fprintf(w, "bytes:    %s\n", hex.EncodeToString(b))
	return nil
}
