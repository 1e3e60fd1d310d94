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

const clockRealtime = unix.CLOCK_REALTIME

func realtimeResolution() (RawTime, error) {
	var ts unix.Timespec
	if err := unix.ClockGetres(clockRealtime, &ts); err != nil {
		return RawTime{}, fmt.Errorf("%w: failed clock_getres: %w", ErrUnavailable, err)
	}
	return rawFromTimespec(ts), nil
}
