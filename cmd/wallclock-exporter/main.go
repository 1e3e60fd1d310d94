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

package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/wallclock/clock"
	"github.com/facebook/wallclock/exporter"
)

func main() {
	var (
		cfg     = &exporter.Config{}
		err     error
		cfgPath string
		verbose bool
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "wallclock prometheus exporter\n\nFlags:\n")
		flag.PrintDefaults()
	}

	flag.IntVar(&cfg.MonitoringPort, "monitoringport", exporter.DefaultMonitoringPort, "Port to serve /metrics on")
	flag.DurationVar(&cfg.Interval, "interval", exporter.DefaultInterval, "Interval at which we read the clock and update metrics")
	flag.IntVar(&cfg.Samples, "samples", exporter.DefaultSamples, "Back to back clock reads per interval to measure clock steps. 0 means disabled.")
	flag.StringVar(&cfgPath, "cfg", "", "Path to config")
	flag.BoolVar(&verbose, "verbose", false, "Verbose logging")

	flag.Parse()

	log.SetReportCaller(true)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cfgPath != "" {
		log.Warningf("using config from %s, flag values are ignored", cfgPath)
		cfg, err = exporter.ReadConfig(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.EvalAndValidate(); err != nil {
		log.Fatal(err)
	}
	log.Debugf("Config: %+v", *cfg)

	c := clock.System()
	log.Infof("Reading clock via %s", c.Source().Name())
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := exporter.New(cfg, c).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
