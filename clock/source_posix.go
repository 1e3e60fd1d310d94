//go:build linux || freebsd || netbsd || openbsd

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

// PosixClock reads CLOCK_REALTIME with nanosecond precision
type PosixClock struct{}

func platformSource() Source { return PosixClock{} }

// Name implements Source
func (PosixClock) Name() string { return "posix" }

// Read implements Source
func (PosixClock) Read() (RawTime, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockRealtime, &ts); err != nil {
		return RawTime{}, fmt.Errorf("%w: failed clock_gettime: %w", ErrUnavailable, err)
	}
	return rawFromTimespec(ts), nil
}

// Resolution implements Source
func (PosixClock) Resolution() (RawTime, error) {
	return realtimeResolution()
}

// timespec fields are 32 bit on some platforms, Unix() widens them
func rawFromTimespec(ts unix.Timespec) RawTime {
	sec, nsec := ts.Unix()
	return RawTime{Seconds: sec, Fraction: fraction(nsec), Unit: Nanoseconds}
}
