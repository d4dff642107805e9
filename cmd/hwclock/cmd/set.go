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
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/hwclock/rtc"
	"github.com/facebook/hwclock/sysclock"
)

// flags
var setTimeFlag string

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set hardware clock to the given UTC time",
	Run:   runSetCmd,
}

var systohcCmd = &cobra.Command{
	Use:   "systohc",
	Short: "Set hardware clock from system time",
	Run:   runSystohcCmd,
}

var hctosysCmd = &cobra.Command{
	Use:   "hctosys",
	Short: "Set system time from hardware clock",
	Run:   runHctosysCmd,
}

func init() {
	RootCmd.AddCommand(setCmd)
	RootCmd.AddCommand(systohcCmd)
	RootCmd.AddCommand(hctosysCmd)
	setCmd.Flags().StringVarP(&setTimeFlag, "time", "t", "", fmt.Sprintf("time to set, one of %v", timeLayouts))
	if err := setCmd.MarkFlagRequired("time"); err != nil {
		log.Fatal(err)
	}
}

// timeLayouts accepted by set
var timeLayouts = []string{
	time.DateTime,
	time.RFC3339,
}

// parseTime parses t as UTC unless it carries its own offset
func parseTime(t string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("can't parse %q, expected one of %v", t, timeLayouts)
}

func runSetCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	t, err := parseTime(setTimeFlag)
	if err != nil {
		log.Fatal(err)
	}
	if err := setRTC(rootDeviceFlag, t); err != nil {
		log.Fatal(err)
	}
}

func runSystohcCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	// rtc only counts whole seconds, set it right on the boundary
	now := time.Now()
	next := now.Truncate(time.Second).Add(time.Second)
	log.Debugf("waiting %v for the next second", next.Sub(now))
	time.Sleep(time.Until(next))
	if err := setRTC(rootDeviceFlag, time.Now()); err != nil {
		log.Fatal(err)
	}
}

func runHctosysCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if err := hctosys(rootDeviceFlag); err != nil {
		log.Fatal(err)
	}
}

func setRTC(device string, t time.Time) error {
	dev, err := rtc.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	fmt.Printf("Setting %s to %v\n", dev, t.UTC().Truncate(time.Second))
	return rtc.WriteCalendar(dev, t)
}

func hctosys(device string) error {
	dev, err := rtc.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	t, err := rtc.ReadCalendar(dev)
	if err != nil {
		return err
	}
	fmt.Printf("Setting system time to %v\n", t)
	return sysclock.Set(t)
}
