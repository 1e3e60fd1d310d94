//go:build js && wasm

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
	"math"
	"syscall/js"
)

// JSClock reads Date.now() of the JavaScript host, in milliseconds
type JSClock struct{}

func platformSource() Source { return JSClock{} }

// Name implements Source
func (JSClock) Name() string { return "js" }

// Read implements Source
func (JSClock) Read() (RawTime, error) {
	ms := js.Global().Get("Date").Call("now").Float()
	return rawFromMillis(ms)
}

// Resolution implements Source. JavaScript doesn't expose one.
func (JSClock) Resolution() (RawTime, error) {
	return RawTime{}, ErrUnsupportedPlatform
}

// rawFromMillis splits a Date.now() reading into seconds and whole milliseconds.
// Sub-millisecond digits some hosts add are dropped since the fraction unit is
// milliseconds.
func rawFromMillis(ms float64) (RawTime, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return RawTime{}, fmt.Errorf("%w: can't represent JavaScript timestamp %v", ErrUnavailable, ms)
	}
	sec := math.Floor(ms / 1000)
	if sec < math.MinInt64 || sec >= math.MaxInt64 {
		return RawTime{}, fmt.Errorf("%w: can't represent JavaScript timestamp %v", ErrUnavailable, ms)
	}
	frac := math.Floor(ms - sec*1000)
	return RawTime{Seconds: int64(sec), Fraction: fraction(int64(frac)), Unit: Milliseconds}, nil
}
