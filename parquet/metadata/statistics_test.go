// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/metadata"
)

func TestEncodedStatisticsToThriftDualWritesLegacyAndModern(t *testing.T) {
	e := (&metadata.EncodedStatistics{}).
		SetMin(metadata.EncodePlainInt32(1)).
		SetMax(metadata.EncodePlainInt32(100)).
		SetNullCount(3).
		SetDistinctCount(9)

	s := e.ToThrift()
	require.NotNil(t, s)
	require.Equal(t, s.Min, s.MinValue)
	require.Equal(t, s.Max, s.MaxValue)
	require.EqualValues(t, 3, *s.NullCount)
	require.EqualValues(t, 9, *s.DistinctCount)
}

func TestEncodedStatisticsToThriftUnsetReturnsNil(t *testing.T) {
	e := &metadata.EncodedStatistics{}
	require.Nil(t, e.ToThrift())
}

func TestStatisticsFromThriftPrefersModernFields(t *testing.T) {
	legacyMin, legacyMax := []byte{0}, []byte{9}
	modernMin, modernMax := []byte{1}, []byte{8}
	s := &format.Statistics{
		Min: legacyMin, Max: legacyMax,
		MinValue: modernMin, MaxValue: modernMax,
	}
	got := metadata.StatisticsFromThrift(s, false)
	require.True(t, got.HasMinMax)
	require.Equal(t, modernMin, got.Min)
	require.Equal(t, modernMax, got.Max)
}

func TestStatisticsFromThriftFallsBackToLegacyWhenCorrect(t *testing.T) {
	legacyMin, legacyMax := []byte{0}, []byte{9}
	s := &format.Statistics{Min: legacyMin, Max: legacyMax}

	got := metadata.StatisticsFromThrift(s, true)
	require.True(t, got.HasMinMax)
	require.Equal(t, legacyMin, got.Min)

	got = metadata.StatisticsFromThrift(s, false)
	require.False(t, got.HasMinMax)
}

func TestEncodedStatisticsMergeKeepsNullCountRunningTotal(t *testing.T) {
	a := (&metadata.EncodedStatistics{}).SetNullCount(2).SetDistinctCount(5)
	b := (&metadata.EncodedStatistics{}).SetNullCount(3).SetDistinctCount(7)

	a.Merge(b)
	require.EqualValues(t, 5, a.NullCount)
	require.EqualValues(t, 7, a.DistinctCount)
}

func TestPlainEncodeDecodeRoundTrip(t *testing.T) {
	require.EqualValues(t, 42, metadata.DecodePlainInt32(metadata.EncodePlainInt32(42)))
	require.EqualValues(t, -7, metadata.DecodePlainInt64(metadata.EncodePlainInt64(-7)))
	require.InDelta(t, 3.5, metadata.DecodePlainFloat32(metadata.EncodePlainFloat32(3.5)), 0.0001)
	require.InDelta(t, 2.25, metadata.DecodePlainFloat64(metadata.EncodePlainFloat64(2.25)), 0.0001)
}
