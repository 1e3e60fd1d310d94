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
	"errors"
	"fmt"
	"time"
)

// DayMax is the day of 9999-12-31, the last day a Stamp can hold
const DayMax = 2932896

// Units we convert between
const (
	SecondsPerDay = 86400
	PsPerSecond   = 1000000000000
	PsPerDay      = SecondsPerDay * PsPerSecond
)

// Errors reported by clock reads and Normalize
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrUnavailable         = errors.New("can't determine current time")
	ErrInvalidFraction     = errors.New("sub-second fraction out of range")
	ErrBeforeEpoch         = errors.New("time before the epoch")
	ErrOutOfRange          = errors.New("time after the last representable day")
)

// FractionUnit is the unit of the sub-second part of a RawTime
type FractionUnit uint8

// Units platform clock APIs report fractions in
const (
	Nanoseconds FractionUnit = iota
	Microseconds
	Milliseconds
)

// perSecond returns how many units make a second, or 0 for unknown units
func (u FractionUnit) perSecond() uint64 {
	switch u {
	case Nanoseconds:
		return 1000000000
	case Microseconds:
		return 1000000
	case Milliseconds:
		return 1000
	}
	return 0
}

func (u FractionUnit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

// RawTime is a sample as the platform returned it: seconds since the Unix epoch
// plus a sub-second fraction
type RawTime struct {
	Seconds  int64
	Fraction uint32
	Unit     FractionUnit
}

// Stamp is a point in time (or a span, for resolutions) as whole days since the
// Unix epoch plus picoseconds into the day. Ps is always below PsPerDay.
type Stamp struct {
	Day uint64
	Ps  uint64
}

// Time returns s as time.Time in UTC. Sub-nanosecond precision is truncated.
func (s Stamp) Time() time.Time {
	sec := int64(s.Day)*SecondsPerDay + int64(s.Ps/PsPerSecond)
	nsec := int64(s.Ps%PsPerSecond) / 1000
	return time.Unix(sec, nsec).UTC()
}

// Duration returns s as a span. It is meant for resolutions and overflows for
// spans of more than ~292 years.
func (s Stamp) Duration() time.Duration {
	return time.Duration(s.Day)*SecondsPerDay*time.Second + time.Duration(s.Ps/1000)
}

func (s Stamp) String() string {
	return fmt.Sprintf("(%d, %d)", s.Day, s.Ps)
}

// Normalize validates raw and converts it to a Stamp.
// Checks run in order: fraction range, epoch, day range.
func Normalize(raw RawTime) (Stamp, error) {
	return normalize(raw, true)
}

func normalize(raw RawTime, checkDayRange bool) (Stamp, error) {
	perSecond := raw.Unit.perSecond()
	if perSecond == 0 || uint64(raw.Fraction) >= perSecond {
		return Stamp{}, fmt.Errorf("%w: %d%s", ErrInvalidFraction, raw.Fraction, raw.Unit)
	}
	if raw.Seconds < 0 {
		return Stamp{}, fmt.Errorf("%w: %ds", ErrBeforeEpoch, raw.Seconds)
	}
	day := uint64(raw.Seconds / SecondsPerDay)
	if checkDayRange && day > DayMax {
		return Stamp{}, fmt.Errorf("%w: day %d > %d", ErrOutOfRange, day, DayMax)
	}
	ps := uint64(raw.Seconds%SecondsPerDay)*PsPerSecond + uint64(raw.Fraction)*(PsPerSecond/perSecond)
	return Stamp{Day: day, Ps: ps}, nil
}

// Clock reads a Source and normalizes what it returns.
// A Clock is immutable and safe for concurrent use.
type Clock struct {
	source   Source
	location *time.Location
}

// Option configures a Clock
type Option func(*Clock)

// WithLocation sets the zone LocalUTCOffsetSeconds treats as local time
func WithLocation(loc *time.Location) Option {
	return func(c *Clock) { c.location = loc }
}

// New returns a Clock reading from source
func New(source Source, opts ...Option) *Clock {
	c := &Clock{source: source, location: time.Local}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the source c reads from
func (c *Clock) Source() Source {
	return c.source
}

// Now returns the current time
func (c *Clock) Now() (Stamp, error) {
	raw, err := c.source.Read()
	if err != nil {
		return Stamp{}, err
	}
	return Normalize(raw)
}

// Resolution returns the resolution of the clock. It returns false when the
// platform can't report one or reports one that doesn't make sense.
func (c *Clock) Resolution() (Stamp, bool) {
	raw, err := c.source.Resolution()
	if err != nil {
		return Stamp{}, false
	}
	res, err := normalize(raw, false)
	if err != nil {
		return Stamp{}, false
	}
	return res, true
}

// LocalUTCOffsetSeconds returns local time minus UTC, in seconds, for the
// current instant. It returns false if the instant or either of its calendar
// breakdowns can't be determined.
func (c *Clock) LocalUTCOffsetSeconds() (int64, bool) {
	// both breakdowns must come from the same instant
	raw, err := c.source.Read()
	if err != nil {
		return 0, false
	}
	local, ok := BreakDown(raw.Seconds, c.location)
	if !ok {
		return 0, false
	}
	utc, ok := BreakDown(raw.Seconds, time.UTC)
	if !ok {
		return 0, false
	}
	return CivilOffset(local, utc), true
}

var system = New(platformSource())

// System returns the Clock backed by this platform's Source
func System() *Clock {
	return system
}

// Now returns the current time from the platform clock
func Now() (Stamp, error) {
	return system.Now()
}

// Resolution returns the platform clock resolution, if known
func Resolution() (Stamp, bool) {
	return system.Resolution()
}

// LocalUTCOffsetSeconds returns the current local time offset from UTC, if known
func LocalUTCOffsetSeconds() (int64, bool) {
	return system.LocalUTCOffsetSeconds()
}
