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
	"github.com/parquetcore/parquet-core/parquet/schema"
)

func TestNewAppVersionParsesParquetMr(t *testing.T) {
	v := metadata.NewAppVersion("parquet-mr version 1.8.0 (build 0fda28ef13c1e4a)")
	require.Equal(t, "parquet-mr", v.Application)
	require.Equal(t, 1, v.Major)
	require.Equal(t, 8, v.Minor)
	require.Equal(t, 0, v.Patch)
	require.Equal(t, "0fda28ef13c1e4a", v.Build)
}

func TestNewAppVersionParsesParquetCppArrow(t *testing.T) {
	v := metadata.NewAppVersion("parquet-cpp-arrow version 10.0.1")
	require.Equal(t, "parquet-cpp-arrow", v.Application)
	require.Equal(t, 10, v.Major)
	require.Equal(t, 0, v.Minor)
	require.Equal(t, 1, v.Patch)
}

func TestNewAppVersionUnrecognizedStringDoesNotPanic(t *testing.T) {
	v := metadata.NewAppVersion("some random producer string")
	require.Equal(t, "unknown", v.Application)
	require.Equal(t, 0, v.Major)
}

func TestHasCorrectStatisticsParquetMrPre18(t *testing.T) {
	v := metadata.NewAppVersion("parquet-mr version 1.5.0 (build abc)")
	require.False(t, v.HasCorrectStatistics(format.Type_BYTE_ARRAY, schema.SortUNSIGNED, false))
	require.True(t, v.HasCorrectStatistics(format.Type_INT32, schema.SortSIGNED, false))
}

func TestHasCorrectStatisticsParquetMrPost18(t *testing.T) {
	v := metadata.NewAppVersion("parquet-mr version 1.10.0 (build abc)")
	require.True(t, v.HasCorrectStatistics(format.Type_BYTE_ARRAY, schema.SortUNSIGNED, false))
}

func TestHasCorrectStatisticsParquetCppPre13(t *testing.T) {
	v := metadata.NewAppVersion("parquet-cpp version 1.2.0")
	require.False(t, v.HasCorrectStatistics(format.Type_BYTE_ARRAY, schema.SortUNSIGNED, false))
}

func TestHasCorrectStatisticsParquetCppPost13(t *testing.T) {
	v := metadata.NewAppVersion("parquet-cpp version 1.5.0")
	require.True(t, v.HasCorrectStatistics(format.Type_BYTE_ARRAY, schema.SortUNSIGNED, false))
}

func TestLessThanSameApplication(t *testing.T) {
	older := metadata.NewAppVersion("parquet-mr version 1.5.0")
	newer := metadata.NewAppVersion("parquet-mr version 1.8.0")
	require.True(t, older.LessThan(newer))
	require.False(t, newer.LessThan(older))
}

func TestLessThanDifferentApplicationNeverLess(t *testing.T) {
	a := metadata.NewAppVersion("parquet-mr version 1.5.0")
	b := metadata.NewAppVersion("parquet-cpp version 99.0.0")
	require.False(t, a.LessThan(b))
}
