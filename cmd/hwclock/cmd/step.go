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
var (
	stepOffsetFlag time.Duration
	stepSystemFlag bool
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Step hardware clock (or system clock with --system) by an offset",
	Run:   runStepCmd,
}

func init() {
	RootCmd.AddCommand(stepCmd)
	stepCmd.Flags().DurationVarP(&stepOffsetFlag, "offset", "o", 0, "step the clock by this offset, resolution is one second")
	stepCmd.Flags().BoolVarP(&stepSystemFlag, "system", "s", false, "step system clock by the offset between rtc and system time instead")
}

func runStepCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	var err error
	if stepSystemFlag {
		err = stepSystem(rootDeviceFlag)
	} else {
		err = stepRTC(rootDeviceFlag, stepOffsetFlag)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func stepRTC(device string, offset time.Duration) error {
	if offset == 0 {
		return fmt.Errorf("--offset must be non-zero")
	}
	dev, err := rtc.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	fmt.Printf("Stepping %s by %v\n", dev, offset)
	set, err := rtc.Step(dev, offset)
	if err != nil {
		return err
	}
	fmt.Printf("Set to %v\n", set)

	reread, err := rtc.ReadCalendar(dev)
	if err != nil {
		return fmt.Errorf("rereading: %w", err)
	}
	fmt.Printf("Reread %v\n", reread)
	return nil
}

// stepSystem keeps sub-second part of system time, unlike hctosys
func stepSystem(device string) error {
	dev, err := rtc.Open(device)
	if err != nil {
		return err
	}
	defer dev.Close()

	_, offset, err := rtc.SystemOffset(dev)
	if err != nil {
		return err
	}
	fmt.Printf("Stepping system clock by %v\n", offset)
	return sysclock.Step(offset)
}
