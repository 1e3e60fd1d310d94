//go:build freebsd || netbsd || openbsd

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

// CLOCK_REALTIME is 0 on every BSD, x/sys/unix doesn't define it on all of them
const clockRealtime = 0

// x/sys/unix has no clock_getres binding on the BSDs
func realtimeResolution() (RawTime, error) {
	return RawTime{}, ErrUnsupportedPlatform
}
