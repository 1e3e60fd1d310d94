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
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectReads(source *MockSource, nsecs ...uint32) {
	var prev *gomock.Call
	for _, n := range nsecs {
		call := source.EXPECT().Read().Return(RawTime{Seconds: 1667818190, Fraction: n, Unit: Nanoseconds}, nil)
		if prev != nil {
			call.After(prev)
		}
		prev = call
	}
}

func TestSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)
	expectReads(source, 100, 100, 200, 300, 300, 400)

	got, err := New(source).Sample(5)
	require.NoError(t, err)
	want := Granularity{
		Samples: 5,
		Steps:   3,
		Min:     100 * time.Nanosecond,
		Max:     100 * time.Nanosecond,
		Median:  100 * time.Nanosecond,
		Mean:    100 * time.Nanosecond,
		Stddev:  0,
	}
	require.Equal(t, want, got)
}

func TestSampleBackward(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)
	expectReads(source, 1000, 2000, 1500, 4500)

	got, err := New(source).Sample(3)
	require.NoError(t, err)
	require.Equal(t, 3, got.Samples)
	require.Equal(t, 2, got.Steps)
	require.Equal(t, 1, got.BackwardSteps)
	require.Equal(t, 1000*time.Nanosecond, got.Min)
	require.Equal(t, 3000*time.Nanosecond, got.Max)
	require.Equal(t, 3000*time.Nanosecond, got.Median)
	require.Equal(t, 2000*time.Nanosecond, got.Mean)
}

func TestSampleStuck(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)
	expectReads(source, 7, 7, 7)

	got, err := New(source).Sample(2)
	require.NoError(t, err)
	require.Equal(t, Granularity{Samples: 2}, got)
}

func TestSampleErrors(t *testing.T) {
	_, err := New(Unsupported{}).Sample(0)
	require.Error(t, err)

	_, err = New(Unsupported{}).Sample(10)
	require.ErrorIs(t, err, ErrUnsupportedPlatform)

	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Read().Return(RawTime{Seconds: 1, Unit: Nanoseconds}, nil),
		source.EXPECT().Read().Return(RawTime{Seconds: 1, Fraction: 1000000000, Unit: Nanoseconds}, nil),
	)
	_, err = New(source).Sample(10)
	require.ErrorIs(t, err, ErrInvalidFraction)
}
