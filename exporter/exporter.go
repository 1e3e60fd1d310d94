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

package exporter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	sddaemon "github.com/coreos/go-systemd/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/facebook/wallclock/clock"
)

const namespace = "wallclock"

// Exporter periodically reads the clock and exposes what it got as prometheus metrics
type Exporter struct {
	cfg      *Config
	clock    *clock.Clock
	registry *prometheus.Registry

	readSuccess     prometheus.Gauge
	readErrors      *prometheus.CounterVec
	day             prometheus.Gauge
	secondsOfDay    prometheus.Gauge
	resolution      prometheus.Gauge
	resolutionKnown prometheus.Gauge
	offset          prometheus.Gauge
	offsetKnown     prometheus.Gauge
	granularityMin  prometheus.Gauge
	granularityMean prometheus.Gauge
	backwardSteps   prometheus.Counter
}

func newGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
}

// New creates a new instance of Exporter
func New(cfg *Config, c *clock.Clock) *Exporter {
	e := &Exporter{
		cfg:             cfg,
		clock:           c,
		registry:        prometheus.NewRegistry(),
		readSuccess:     newGauge("read_success", "1 if the last clock read succeeded"),
		day:             newGauge("day", "Days since the Unix epoch at the last clock read"),
		secondsOfDay:    newGauge("seconds_of_day", "Seconds since midnight UTC at the last clock read"),
		resolution:      newGauge("resolution_seconds", "Realtime clock resolution reported by the OS"),
		resolutionKnown: newGauge("resolution_known", "1 if the OS reports the realtime clock resolution"),
		offset:          newGauge("utc_offset_seconds", "Local time minus UTC"),
		offsetKnown:     newGauge("utc_offset_known", "1 if the local time offset could be determined"),
		granularityMin:  newGauge("granularity_min_seconds", "Smallest step observed between back to back clock reads"),
		granularityMean: newGauge("granularity_mean_seconds", "Mean step observed between back to back clock reads"),
		readErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "read_errors_total",
			Help:      "Failed clock reads by reason",
		}, []string{"reason"}),
		backwardSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backward_steps_total",
			Help:      "Back to back clock reads where the clock went backwards",
		}),
	}
	e.registry.MustRegister(
		e.readSuccess,
		e.readErrors,
		e.day,
		e.secondsOfDay,
		e.resolution,
		e.resolutionKnown,
		e.offset,
		e.offsetKnown,
		e.granularityMin,
		e.granularityMean,
		e.backwardSteps,
	)
	return e
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func stampSeconds(s clock.Stamp) float64 {
	return float64(s.Day)*clock.SecondsPerDay + float64(s.Ps)/clock.PsPerSecond
}

// Collect reads the clock once and updates all metrics
func (e *Exporter) Collect() {
	now, err := e.clock.Now()
	e.readSuccess.Set(boolToFloat(err == nil))
	if err != nil {
		log.Warningf("failed to read clock: %v", err)
		e.readErrors.WithLabelValues(Reason(err)).Inc()
	} else {
		e.day.Set(float64(now.Day))
		e.secondsOfDay.Set(float64(now.Ps) / clock.PsPerSecond)
	}

	res, ok := e.clock.Resolution()
	e.resolutionKnown.Set(boolToFloat(ok))
	if ok {
		e.resolution.Set(stampSeconds(res))
	}

	offset, ok := e.clock.LocalUTCOffsetSeconds()
	e.offsetKnown.Set(boolToFloat(ok))
	if ok {
		e.offset.Set(float64(offset))
	}

	if e.cfg.Samples == 0 {
		return
	}
	g, err := e.clock.Sample(e.cfg.Samples)
	if err != nil {
		log.Warningf("failed to sample clock granularity: %v", err)
		return
	}
	log.Debugf("granularity: %+v", g)
	e.granularityMin.Set(g.Min.Seconds())
	e.granularityMean.Set(g.Mean.Seconds())
	e.backwardSteps.Add(float64(g.BackwardSteps))
}

// Handler returns the /metrics handler
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

func (e *Exporter) collectLoop(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()
	for {
		e.Collect()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Run serves metrics and collects them every interval until ctx is done
func (e *Exporter) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", e.cfg.MonitoringPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Infof("Starting prometheus exporter on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown(context.Background())
	})
	eg.Go(func() error {
		e.collectLoop(ctx)
		return nil
	})
	notifyReady()
	return eg.Wait()
}

// notifyReady tells systemd we are up, if we run under it
func notifyReady() {
	sent, err := sddaemon.SdNotify(false, sddaemon.SdNotifyReady)
	if err != nil {
		log.Warningf("failed to notify systemd: %v", err)
		return
	}
	log.Debugf("systemd notified: %v", sent)
}
