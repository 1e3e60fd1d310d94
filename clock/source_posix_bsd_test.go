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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosixClockResolutionBSD(t *testing.T) {
	_, err := PosixClock{}.Resolution()
	require.ErrorIs(t, err, ErrUnsupportedPlatform)

	_, ok := New(PosixClock{}).Resolution()
	require.False(t, ok)

	_, err = New(PosixClock{}).Now()
	require.NoError(t, err)
}
