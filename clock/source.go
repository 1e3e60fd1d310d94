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
	"math"
)

//go:generate mockgen -source=source.go -destination=source_mock_test.go -package=clock

// Source is a platform realtime clock
type Source interface {
	// Name identifies the platform API
	Name() string
	// Read returns the current realtime clock reading
	Read() (RawTime, error)
	// Resolution returns the resolution the platform reports for the realtime clock
	Resolution() (RawTime, error)
}

// Unsupported is the Source of platforms we have no clock API for
type Unsupported struct{}

// Name implements Source
func (Unsupported) Name() string { return "unsupported" }

// Read implements Source
func (Unsupported) Read() (RawTime, error) { return RawTime{}, ErrUnsupportedPlatform }

// Resolution implements Source
func (Unsupported) Resolution() (RawTime, error) { return RawTime{}, ErrUnsupportedPlatform }

// fraction turns a signed sub-second value from a syscall struct into a RawTime
// fraction. Values that don't fit become math.MaxUint32 so Normalize rejects them.
func fraction(v int64) uint32 {
	if v < 0 || v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
