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
	"errors"

	"github.com/facebook/wallclock/clock"
)

// Reason turns a clock read error into a metric label
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, clock.ErrUnsupportedPlatform):
		return "unsupported_platform"
	case errors.Is(err, clock.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, clock.ErrInvalidFraction):
		return "invalid_fraction"
	case errors.Is(err, clock.ErrBeforeEpoch):
		return "before_epoch"
	case errors.Is(err, clock.ErrOutOfRange):
		return "out_of_range"
	}
	return "unknown"
}
