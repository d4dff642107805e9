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
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/hwclock/rtc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List hardware clocks known to the kernel",
	Run:   runListCmd,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func runListCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	devices, err := rtc.Devices()
	if err != nil {
		log.Fatal(err)
	}
	if len(devices) == 0 {
		log.Fatal("no rtc devices found")
	}
	printDevices(os.Stdout, devices)
}

func printDevices(w io.Writer, devices []rtc.DeviceInfo) {
	table := tablewriter.NewWriter(w)
	table.Header("device", "driver", "hctosys")
	for _, d := range devices {
		table.Append([]string{d.Device, d.Name, fmt.Sprintf("%v", d.HCToSys)})
	}
	table.Render()
}
