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

/*
Package clock is the single point of contact between a time library and the
operating system's realtime clock.

It allows reading of
  - the current time through Now, normalized to a (day, picosecond of day) Stamp
    counted from the Unix epoch
  - the clock resolution through Resolution, where the platform reports one
  - the offset between local civil time and UTC through LocalUTCOffsetSeconds.

Each platform provides one Source, selected at build time:
  - PosixClock uses clock_gettime(2) and clock_getres(2) with CLOCK_REALTIME
  - DarwinClock uses gettimeofday(2), which only has microsecond precision
  - JSClock uses Date.now() when running in a JavaScript host
  - Unsupported fails every read.

Readings the canonical representation can't hold (negative seconds, a day after
DayMax, a sub-second fraction out of range) are rejected, never clamped.
*/
package clock
