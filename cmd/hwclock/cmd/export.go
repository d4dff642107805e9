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
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/daemon"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/hwclock/rtc"
	"github.com/facebook/hwclock/rtc/stats"
)

// flags
var exportConfigFlag string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export hardware clock metrics to Prometheus",
	Run:   runExportCmd,
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportConfigFlag, "config", "c", "", "path to yaml config, defaults are used if empty")
}

func exportConfig() (*stats.Config, error) {
	cfg := stats.DefaultConfig()
	if exportConfigFlag != "" {
		var err error
		if cfg, err = stats.ReadConfig(exportConfigFlag); err != nil {
			return nil, err
		}
	}
	// explicit --device wins over config
	if exportConfigFlag == "" || RootCmd.PersistentFlags().Changed("device") {
		cfg.Device = rootDeviceFlag
	}
	return cfg, cfg.Validate()
}

func runExportCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()
	cfg, err := exportConfig()
	if err != nil {
		log.Fatal(err)
	}
	log.Debugf("config: %+v", cfg)

	dev, err := rtc.Open(cfg.Device)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	ln, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := daemon.SdNotify(false, "READY=1"); err != nil {
		log.Warningf("failed to notify systemd: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := stats.NewExporter(dev, cfg).Serve(ctx, ln); err != nil {
		log.Fatal(err)
	}
}
