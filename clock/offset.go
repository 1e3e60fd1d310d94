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
	"time"
)

const minutesPerDay = 24 * 60

// Civil is the part of a calendar breakdown of an instant we need to compare
// two zones. YearDay is 0-based, like tm_yday.
type Civil struct {
	YearDay int
	Hour    int
	Minute  int
}

// BreakDown returns the calendar breakdown of sec seconds since the epoch in loc
func BreakDown(sec int64, loc *time.Location) (Civil, bool) {
	if loc == nil {
		return Civil{}, false
	}
	t := time.Unix(sec, 0).In(loc)
	return Civil{
		YearDay: t.YearDay() - 1,
		Hour:    t.Hour(),
		Minute:  t.Minute(),
	}, true
}

// CivilOffset returns local minus utc in seconds. Both must be breakdowns of the
// same instant, so they are at most a day apart.
func CivilOffset(local, utc Civil) int64 {
	dd := local.YearDay - utc.YearDay
	dm := (local.Hour-utc.Hour)*60 + (local.Minute - utc.Minute)
	switch {
	case dd == 1 || dd < -1: // dd < -1 is a year wrap
		dm += minutesPerDay
	case dd == -1 || dd > 1: // dd > 1 is a year wrap
		dm -= minutesPerDay
	}
	return int64(dm) * 60
}
