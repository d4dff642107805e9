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

/*
Package stats exports hardware clock readings to Prometheus: RTC time,
offset from the system clock and running statistics of that offset.
*/
package stats

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/eclesh/welford"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/facebook/hwclock/rtc"
)

// runningStats is what we use from welford
type runningStats interface {
	Add(x float64)
	Mean() float64
	Stddev() float64
}

// Exporter periodically reads the rtc and exposes what it read
type Exporter struct {
	dev      rtc.DeviceController
	cfg      *Config
	registry *prometheus.Registry

	offsetStats runningStats

	rtcTime      prometheus.Gauge
	offset       prometheus.Gauge
	offsetMean   prometheus.Gauge
	offsetStddev prometheus.Gauge
	readErrors   prometheus.Counter
}

// NewExporter creates a new instance of Exporter reading from dev
func NewExporter(dev rtc.DeviceController, cfg *Config) *Exporter {
	e := &Exporter{
		dev:         dev,
		cfg:         cfg,
		registry:    prometheus.NewRegistry(),
		offsetStats: welford.New(),
		rtcTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rtc_time_seconds",
			Help: "Hardware clock time as unix timestamp",
		}),
		offset: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rtc_system_offset_seconds",
			Help: "Hardware clock time minus system time",
		}),
		offsetMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rtc_system_offset_mean_seconds",
			Help: "Mean of rtc_system_offset_seconds since start",
		}),
		offsetStddev: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rtc_system_offset_stddev_seconds",
			Help: "Standard deviation of rtc_system_offset_seconds since start",
		}),
		readErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rtc_read_errors_total",
			Help: "Failed hardware clock reads",
		}),
	}
	e.registry.MustRegister(e.rtcTime, e.offset, e.offsetMean, e.offsetStddev, e.readErrors)
	return e
}

// Scrape reads the rtc once and updates the metrics
func (e *Exporter) Scrape() error {
	rtcTime, offset, err := rtc.SystemOffset(e.dev)
	if err != nil {
		e.readErrors.Inc()
		return err
	}
	e.rtcTime.Set(float64(rtcTime.Unix()))
	e.offset.Set(offset.Seconds())
	e.offsetStats.Add(offset.Seconds())
	e.offsetMean.Set(e.offsetStats.Mean())
	e.offsetStddev.Set(e.offsetStats.Stddev())
	return nil
}

// Run scrapes every interval until ctx is done.
// Read errors are logged and counted, they don't stop the loop.
func (e *Exporter) Run(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()
	for {
		if err := e.Scrape(); err != nil {
			log.Errorf("failed to read %s: %v", e.cfg.Device, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Handler serves the metrics
func (e *Exporter) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		e.registry,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
		},
	))
	return mux
}

// Serve runs the scrape loop and the http server on ln until ctx is done
func (e *Exporter) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           e.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e.Run(ctx)
		return nil
	})
	g.Go(func() error {
		log.Infof("serving metrics on %s", ln.Addr())
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
