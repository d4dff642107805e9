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
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/eclesh/welford"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/facebook/hwclock/rtc"
)

// flags
var (
	checkSamplesFlag  int
	checkIntervalFlag time.Duration
	checkWarnFlag     time.Duration
	checkFailFlag     time.Duration
)

type status int

// possible check results
const (
	OK status = iota
	WARN
	FAIL
)

var okString = color.GreenString("[ OK ]")
var warnString = color.YellowString("[WARN]")
var failString = color.RedString("[FAIL]")

var statusToColor = []string{okString, warnString, failString}

type checkResult struct {
	status status
	msg    string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run basic hardware clock diagnostics",
	Run:   runCheckCmd,
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVarP(&checkSamplesFlag, "samples", "n", 3, "number of reads to take")
	checkCmd.Flags().DurationVarP(&checkIntervalFlag, "interval", "i", time.Second, "interval between reads")
	checkCmd.Flags().DurationVar(&checkWarnFlag, "warn", 2*time.Second, "warn if offset from system time is over this")
	checkCmd.Flags().DurationVar(&checkFailFlag, "fail", time.Minute, "fail if offset from system time is over this")
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// generic function to check value against some thresholds
func checkAgainstThreshold[T constraints.Ordered](name string, value, warnThreshold, failThreshold T) checkResult {
	msgTemplate := "%s is %s, we expect it to be within %s"
	thresholdStr := color.BlueString("%v", warnThreshold)
	if value > failThreshold {
		return checkResult{FAIL, fmt.Sprintf(msgTemplate, name, color.RedString("%v", value), thresholdStr)}
	}
	if value > warnThreshold {
		return checkResult{WARN, fmt.Sprintf(msgTemplate, name, color.YellowString("%v", value), thresholdStr)}
	}
	return checkResult{OK, fmt.Sprintf(msgTemplate, name, color.GreenString("%v", value), thresholdStr)}
}

// runChecks reads dev samples times and checks the readings.
// Stops at the first failed read: nothing after it can be checked.
func runChecks(dev rtc.DeviceController, samples int, interval, warn, fail time.Duration) []checkResult {
	results := []checkResult{}
	s := welford.New()
	var worst time.Duration
	for i := 0; i < samples; i++ {
		if i > 0 {
			time.Sleep(interval)
		}
		_, offset, err := rtc.SystemOffset(dev)
		if errors.Is(err, rtc.ErrInvalidDate) {
			return append(results, checkResult{FAIL, fmt.Sprintf("rtc holds garbage, set it first: %v", err)})
		}
		if err != nil {
			return append(results, checkResult{FAIL, fmt.Sprintf("reading rtc: %v", err)})
		}
		s.Add(offset.Seconds())
		if abs(offset) > abs(worst) {
			worst = offset
		}
	}
	results = append(results, checkResult{OK, fmt.Sprintf("read %d valid rtc times", samples)})
	results = append(results, checkAgainstThreshold("offset from system time", abs(worst), warn, fail))
	if samples > 1 {
		// rtc and system clock tick at different moments, up to a second of jitter is expected
		jitter := time.Duration(s.Stddev() * float64(time.Second))
		results = append(results, checkAgainstThreshold("offset stddev", jitter, time.Second, 2*time.Second))
	}
	return results
}

func runCheckCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	if checkSamplesFlag < 1 {
		log.Fatal("--samples must be positive")
	}
	dev, err := rtc.Open(rootDeviceFlag)
	if err != nil {
		fmt.Printf("%s %v\n", failString, err)
		os.Exit(1)
	}
	defer dev.Close()
	fmt.Printf("%s opened %s\n", okString, dev)

	failed := false
	for _, r := range runChecks(dev, checkSamplesFlag, checkIntervalFlag, checkWarnFlag, checkFailFlag) {
		fmt.Printf("%s %s\n", statusToColor[r.status], r.msg)
		if r.status == FAIL {
			failed = true
		}
	}
	if failed {
		dev.Close()
		os.Exit(1)
	}
}
