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

package checker

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
	"github.com/shirou/gopsutil/host"
	log "github.com/sirupsen/logrus"

	"github.com/facebook/wallclock/clock"
)

// Runner collects a Result. Host facing parts are swappable for tests.
type Runner struct {
	Clock     *clock.Clock
	BootTime  func() (time.Time, error)
	NTPOffset func(server string, timeout time.Duration) (time.Duration, error)
}

// NewRunner returns a Runner reading c and querying the real host and network
func NewRunner(c *clock.Clock) *Runner {
	return &Runner{
		Clock:     c,
		BootTime:  hostBootTime,
		NTPOffset: ntpOffset,
	}
}

func hostBootTime() (time.Time, error) {
	bt, err := host.BootTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("getting host boot time: %w", err)
	}
	return time.Unix(int64(bt), 0), nil
}

func ntpOffset(server string, timeout time.Duration) (time.Duration, error) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return 0, fmt.Errorf("querying %s: %w", server, err)
	}
	if err := resp.Validate(); err != nil {
		return 0, fmt.Errorf("invalid response from %s: %w", server, err)
	}
	return resp.ClockOffset, nil
}

// Run collects everything Options ask for. It never fails, errors are part of the Result.
func (r *Runner) Run(opts Options) *Result {
	res := &Result{Source: r.Clock.Source().Name()}
	log.Debugf("reading clock via %s", res.Source)
	res.Now, res.NowErr = r.Clock.Now()
	res.Resolution, res.ResolutionKnown = r.Clock.Resolution()
	res.Offset, res.OffsetKnown = r.Clock.LocalUTCOffsetSeconds()
	res.BootTime, res.BootTimeErr = r.BootTime()
	if opts.Samples > 0 {
		res.Granularity, res.GranularityErr = r.Clock.Sample(opts.Samples)
	}
	if opts.NTPServer != "" {
		res.NTPServer = opts.NTPServer
		res.NTPOffset, res.NTPErr = r.NTPOffset(opts.NTPServer, opts.NTPTimeout)
		log.Debugf("ntp offset from %s: %v (%v)", opts.NTPServer, res.NTPOffset, res.NTPErr)
	}
	return res
}

// RunCheck is a simple wrapper to run all checks against the system clock
func RunCheck(opts Options) *Result {
	return NewRunner(clock.System()).Run(opts)
}
