//go:build darwin

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

	"golang.org/x/sys/unix"
)

// DarwinClock reads the realtime clock with gettimeofday, which only has
// microsecond precision
type DarwinClock struct{}

func platformSource() Source { return DarwinClock{} }

// Name implements Source
func (DarwinClock) Name() string { return "darwin" }

// Read implements Source
func (DarwinClock) Read() (RawTime, error) {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return RawTime{}, fmt.Errorf("%w: failed gettimeofday: %w", ErrUnavailable, err)
	}
	return RawTime{Seconds: tv.Sec, Fraction: fraction(int64(tv.Usec)), Unit: Microseconds}, nil
}

// Resolution implements Source. There is no resolution query next to gettimeofday.
func (DarwinClock) Resolution() (RawTime, error) {
	return RawTime{}, ErrUnsupportedPlatform
}
