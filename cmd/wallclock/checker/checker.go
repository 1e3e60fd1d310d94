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
	"time"

	"github.com/facebook/wallclock/clock"
)

// Result is what we learned about the host clock, abstracting away how we got it
type Result struct {
	Source          string
	Now             clock.Stamp
	NowErr          error
	Resolution      clock.Stamp
	ResolutionKnown bool
	Offset          int64
	OffsetKnown     bool
	BootTime        time.Time
	BootTimeErr     error
	Granularity     clock.Granularity
	GranularityErr  error
	NTPServer       string
	NTPOffset       time.Duration
	NTPErr          error
}

// Options control the optional parts of a check
type Options struct {
	Samples    int           // back to back reads to measure granularity, 0 disables
	NTPServer  string        // server to compare against, empty disables
	NTPTimeout time.Duration // timeout for the NTP query
}
