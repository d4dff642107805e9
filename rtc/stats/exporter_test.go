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

package stats

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/facebook/hwclock/rtc"
)

// 2018-02-19 14:06:01 UTC
var reference = rtc.RTCTime{Sec: 1, Min: 6, Hour: 14, Mday: 19, Mon: 1, Year: 118}

const referenceUnix = 1519049161

func TestScrape(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := rtc.NewMockDeviceController(ctrl)
	dev.EXPECT().ReadTime().Return(reference, nil).Times(2)
	e := NewExporter(dev, DefaultConfig())

	require.NoError(t, e.Scrape())
	require.InDelta(t, float64(referenceUnix), testutil.ToFloat64(e.rtcTime), 0.1)
	wantOffset := float64(referenceUnix - time.Now().Unix())
	require.InDelta(t, wantOffset, testutil.ToFloat64(e.offset), 2)

	require.NoError(t, e.Scrape())
	require.InDelta(t, wantOffset, testutil.ToFloat64(e.offsetMean), 2)
	require.InDelta(t, 0, testutil.ToFloat64(e.offsetStddev), 1)
	require.Zero(t, testutil.ToFloat64(e.readErrors))
}

func TestScrapeErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := rtc.NewMockDeviceController(ctrl)
	gomock.InOrder(
		dev.EXPECT().ReadTime().Return(rtc.RTCTime{}, fmt.Errorf("device error")),
		dev.EXPECT().ReadTime().Return(rtc.RTCTime{Mday: 31, Mon: 1, Year: 118}, nil),
	)
	e := NewExporter(dev, DefaultConfig())

	require.EqualError(t, e.Scrape(), "device error")
	require.ErrorIs(t, e.Scrape(), rtc.ErrInvalidDate)
	require.InDelta(t, 2, testutil.ToFloat64(e.readErrors), 0.1)
	require.Zero(t, testutil.ToFloat64(e.rtcTime))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := rtc.NewMockDeviceController(ctrl)
	dev.EXPECT().ReadTime().Return(rtc.RTCTime{}, fmt.Errorf("device error")).Times(1)
	e := NewExporter(dev, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e.Run(ctx)
	require.InDelta(t, 1, testutil.ToFloat64(e.readErrors), 0.1)
}

func TestServe(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := rtc.NewMockDeviceController(ctrl)
	dev.EXPECT().ReadTime().Return(reference, nil).AnyTimes()
	cfg := DefaultConfig()
	cfg.Interval = time.Second
	e := NewExporter(dev, cfg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- e.Serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/metrics", ln.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		return strings.Contains(string(body), "rtc_time_seconds 1.519049161e+09")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
