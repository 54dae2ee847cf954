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

	"github.com/parquetcore/parquet-core/parquet/metadata"
)

func buildOneRowGroupFooter(t *testing.T) *metadata.FileMetaData {
	t.Helper()
	sc := testSchema(t)
	fb := metadata.NewFileMetadataBuilder(sc, metadata.WithCreatedBy("parquet-mr version 1.10.0 (build abc)"))

	rgb := fb.AppendRowGroup()
	rgb.SetNumRows(3)
	for i := 0; i < sc.NumColumns(); i++ {
		cb, err := rgb.NextColumnChunk()
		require.NoError(t, err)
		_, err = cb.Finish(metadata.ChunkMetaInfo{NumValues: 3}, nil, metadata.EncodingStats{}, nil)
		require.NoError(t, err)
	}
	require.NoError(t, fb.FinishRowGroup(40, 25, 4))

	raw := fb.Finish()
	serialized, err := metadata.NewFileMetaData(raw).SerializeString()
	require.NoError(t, err)

	got, err := metadata.DeserializeFileMetaData(serialized)
	require.NoError(t, err)
	return got
}

func TestFileMetaDataSerializeDeserializeRoundTrip(t *testing.T) {
	fm := buildOneRowGroupFooter(t)
	require.EqualValues(t, 3, fm.NumRows())
	require.Equal(t, 1, fm.NumRowGroups())
	require.Equal(t, "parquet-mr version 1.10.0 (build abc)", fm.GetCreatedBy())
	require.Equal(t, "parquet-mr", fm.WriterVersion().Application)
	require.False(t, fm.IsEncryptionAlgorithmSet())
}

func TestFileMetaDataSubsetAndEquals(t *testing.T) {
	fm := buildOneRowGroupFooter(t)
	sub := fm.Subset([]int{0})
	require.Equal(t, fm.NumRows(), sub.NumRows())
	require.True(t, fm.Equals(sub))
	require.False(t, fm.Equals(nil))
}

func TestFileMetaDataAppendRowGroupsAcceptsIdenticalSchema(t *testing.T) {
	fm := buildOneRowGroupFooter(t)

	otherSchema := testSchema(t)
	fb := metadata.NewFileMetadataBuilder(otherSchema)
	rgb := fb.AppendRowGroup()
	for i := 0; i < otherSchema.NumColumns(); i++ {
		cb, err := rgb.NextColumnChunk()
		require.NoError(t, err)
		_, err = cb.Finish(metadata.ChunkMetaInfo{}, nil, metadata.EncodingStats{}, nil)
		require.NoError(t, err)
	}
	require.NoError(t, fb.FinishRowGroup(0, 0, 0))
	other := metadata.NewFileMetaData(fb.Finish())

	require.NoError(t, fm.AppendRowGroups(other))
	require.Equal(t, 2, fm.NumRowGroups())
}
