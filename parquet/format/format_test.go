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

package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/thriftutil"
)

func TestColumnMetaDataCompactProtocolRoundTrip(t *testing.T) {
	nullCount := int64(2)
	dictOffset := int64(4)
	meta := &format.ColumnMetaData{
		Type:                  format.Type_INT32,
		Encodings:             []format.Encoding{format.Encoding_PLAIN, format.Encoding_RLE_DICTIONARY},
		PathInSchema:          []string{"a", "b"},
		Codec:                 format.CompressionCodec_SNAPPY,
		NumValues:             100,
		TotalUncompressedSize: 400,
		TotalCompressedSize:   250,
		DataPageOffset:        4,
		DictionaryPageOffset:  &dictOffset,
		Statistics: &format.Statistics{
			MinValue:  []byte{0, 0, 0, 0},
			MaxValue:  []byte{99, 0, 0, 0},
			NullCount: &nullCount,
		},
	}

	buf, err := thriftutil.Serialize(meta)
	require.NoError(t, err)

	got := &format.ColumnMetaData{}
	require.NoError(t, thriftutil.Deserialize(buf, got))

	require.Equal(t, meta.Type, got.Type)
	require.Equal(t, meta.Encodings, got.Encodings)
	require.Equal(t, meta.PathInSchema, got.PathInSchema)
	require.Equal(t, meta.NumValues, got.NumValues)
	require.NotNil(t, got.DictionaryPageOffset)
	require.EqualValues(t, 4, *got.DictionaryPageOffset)
	require.NotNil(t, got.Statistics)
	require.Equal(t, meta.Statistics.MinValue, got.Statistics.MinValue)
	require.EqualValues(t, 2, *got.Statistics.NullCount)
}

func TestFileMetaDataCompactProtocolRoundTripWithRowGroups(t *testing.T) {
	createdBy := "parquet-core test"
	fileOffset := int64(4)
	totalCompressed := int64(50)
	fm := &format.FileMetaData{
		Version:   1,
		CreatedBy: &createdBy,
		Schema: []format.SchemaElement{
			{Name: "schema"},
			{Name: "a"},
		},
		NumRows: 3,
		RowGroups: []format.RowGroup{
			{
				Columns:             []format.ColumnChunk{{MetaData: &format.ColumnMetaData{Type: format.Type_INT32, NumValues: 3, PathInSchema: []string{"a"}}}},
				TotalByteSize:       60,
				NumRows:             3,
				FileOffset:          &fileOffset,
				TotalCompressedSize: &totalCompressed,
			},
		},
	}

	buf, err := thriftutil.Serialize(fm)
	require.NoError(t, err)

	got := &format.FileMetaData{}
	require.NoError(t, thriftutil.Deserialize(buf, got))

	require.EqualValues(t, 3, got.NumRows)
	require.Len(t, got.RowGroups, 1)
	require.Equal(t, *fm.CreatedBy, *got.CreatedBy)
	require.Len(t, got.RowGroups[0].Columns, 1)
	require.EqualValues(t, 3, got.RowGroups[0].Columns[0].MetaData.NumValues)
}

func TestEncryptionAlgorithmUnionRoundTrip(t *testing.T) {
	alg := &format.EncryptionAlgorithm{
		AesGcmCtrV1: &format.AesGcmCtrV1{AadFileUnique: []byte("01234567")},
	}
	buf, err := thriftutil.Serialize(alg)
	require.NoError(t, err)

	got := &format.EncryptionAlgorithm{}
	require.NoError(t, thriftutil.Deserialize(buf, got))
	require.Nil(t, got.AesGcmV1)
	require.NotNil(t, got.AesGcmCtrV1)
	require.Equal(t, alg.AesGcmCtrV1.AadFileUnique, got.AesGcmCtrV1.AadFileUnique)
}
