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

package clock

import (
	"fmt"
	"time"

	"github.com/eclesh/welford"
	"golang.org/x/exp/slices"
)

// Granularity is what we observe reading the clock back to back
type Granularity struct {
	Samples       int           // number of intervals between reads
	Steps         int           // intervals where the clock moved forward
	BackwardSteps int           // intervals where the clock moved backward
	Min           time.Duration // smallest forward step
	Max           time.Duration // largest forward step
	Median        time.Duration
	Mean          time.Duration
	Stddev        time.Duration
}

// Sample reads the clock n+1 times back to back and reports how it advanced.
// Reported resolution is not always what readers get, so this measures it.
func (c *Clock) Sample(n int) (Granularity, error) {
	if n < 1 {
		return Granularity{}, fmt.Errorf("number of samples must be positive, got %d", n)
	}
	g := Granularity{Samples: n}
	prev, err := c.Now()
	if err != nil {
		return g, err
	}
	s := welford.New()
	steps := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		cur, err := c.Now()
		if err != nil {
			return g, err
		}
		d := cur.Time().Sub(prev.Time())
		prev = cur
		if d < 0 {
			g.BackwardSteps++
			continue
		}
		if d == 0 {
			continue
		}
		steps = append(steps, d)
		s.Add(float64(d))
	}
	g.Steps = len(steps)
	if g.Steps == 0 {
		return g, nil
	}
	slices.Sort(steps)
	g.Min = steps[0]
	g.Max = steps[len(steps)-1]
	g.Median = steps[len(steps)/2]
	g.Mean = time.Duration(s.Mean())
	g.Stddev = time.Duration(s.Stddev())
	return g, nil
}
