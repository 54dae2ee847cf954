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

	"github.com/parquetcore/parquet-core/parquet"
	"github.com/parquetcore/parquet-core/parquet/compress"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/metadata"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	a := schema.NewInt32Node("a", schema.Required, -1)
	b := schema.NewByteArrayNode("b", schema.Optional, -1)
	root, err := schema.NewGroupNode("schema", schema.Required, schema.FieldList{a, b}, -1)
	require.NoError(t, err)
	return schema.NewSchema(root)
}

func TestColumnChunkMetaDataBuilderFinishUnencrypted(t *testing.T) {
	sc := testSchema(t)
	cb := metadata.NewColumnChunkMetaDataBuilder(sc.Column(0), nil, 0, 0)
	cb.SetFileOffset(4)
	cb.SetCodec(compress.Codecs.Snappy)
	cb.AddEncoding(format.Encoding_PLAIN)
	cb.AddEncoding(format.Encoding_PLAIN) // dedup

	stats := (&metadata.EncodedStatistics{}).SetMin(metadata.EncodePlainInt32(1)).SetMax(metadata.EncodePlainInt32(9))
	encStats := metadata.EncodingStats{}
	encStats.Add(format.PageType_DATA_PAGE, format.Encoding_PLAIN)

	chunk, err := cb.Finish(metadata.ChunkMetaInfo{
		NumValues: 10, DataPageOffset: 4, CompressedSize: 100, UncompressedSize: 150,
	}, stats, encStats, nil)
	require.NoError(t, err)
	require.NotNil(t, chunk.MetaData)
	require.Nil(t, chunk.EncryptedColumnMetadata)
	require.EqualValues(t, 10, chunk.MetaData.NumValues)
	require.Len(t, chunk.MetaData.Encodings, 1)
	require.Len(t, chunk.MetaData.EncodingStats, 1)
	require.NotNil(t, chunk.MetaData.Statistics)
}

func TestRowGroupMetaDataBuilderRequiresAllColumns(t *testing.T) {
	sc := testSchema(t)
	rgb := metadata.NewRowGroupMetaDataBuilder(sc, 0, nil)

	_, err := rgb.Finish(0, 0, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, parquet.ErrBuilderMisuse)

	for i := 0; i < sc.NumColumns(); i++ {
		cb, err := rgb.NextColumnChunk()
		require.NoError(t, err)
		_, err = cb.Finish(metadata.ChunkMetaInfo{}, nil, metadata.EncodingStats{}, nil)
		require.NoError(t, err)
	}
	rg, err := rgb.Finish(200, 120, 4)
	require.NoError(t, err)
	require.Len(t, rg.Columns, sc.NumColumns())
	require.EqualValues(t, 200, rg.TotalByteSize)
	require.EqualValues(t, 120, *rg.TotalCompressedSize)
}

func TestFileMetaDataBuilderFinishAssemblesFooter(t *testing.T) {
	sc := testSchema(t)
	fb := metadata.NewFileMetadataBuilder(sc, metadata.WithCreatedBy("parquet-core test"), metadata.WithFormatVersion(2))

	rgb := fb.AppendRowGroup()
	rgb.SetNumRows(5)
	for i := 0; i < sc.NumColumns(); i++ {
		cb, err := rgb.NextColumnChunk()
		require.NoError(t, err)
		_, err = cb.Finish(metadata.ChunkMetaInfo{NumValues: 5}, nil, metadata.EncodingStats{}, nil)
		require.NoError(t, err)
	}
	require.NoError(t, fb.FinishRowGroup(50, 30, 4))

	raw := fb.Finish()
	require.EqualValues(t, 2, raw.Version)
	require.Equal(t, "parquet-core test", *raw.CreatedBy)
	require.Len(t, raw.RowGroups, 1)
	require.Nil(t, raw.EncryptionAlgorithm)
	require.Nil(t, raw.FooterSigningKeyMetadata)
}

// TestFileMetaDataBuilderFinishPlaintextSignedCarriesAlgorithm checks that
// plaintext-footer-signed mode embeds the encryption_algorithm and
// footer_signing_key_metadata fields directly in the footer, since a
// reader needs them before it can even verify the signature - unlike
// encrypted-footer mode, where the same information instead lives in the
// external FileCryptoMetaData that precedes the sealed footer.
func TestFileMetaDataBuilderFinishPlaintextSignedCarriesAlgorithm(t *testing.T) {
	sc := testSchema(t)
	footerKey := []byte("0123456789abcdef")
	keyMeta := []byte("key-id-1")
	props, err := encryption.NewFileEncryptionProperties(footerKey,
		encryption.WithPlaintextFooter(), encryption.WithFooterKeyMetadata(keyMeta))
	require.NoError(t, err)
	enc := encryption.NewFileEncryptor(props)

	fb := metadata.NewFileMetadataBuilder(sc, metadata.WithFileEncryptor(enc))
	rgb := fb.AppendRowGroup()
	rgb.SetNumRows(1)
	for i := 0; i < sc.NumColumns(); i++ {
		cb, err := rgb.NextColumnChunk()
		require.NoError(t, err)
		_, err = cb.Finish(metadata.ChunkMetaInfo{NumValues: 1}, nil, metadata.EncodingStats{}, nil)
		require.NoError(t, err)
	}
	require.NoError(t, fb.FinishRowGroup(10, 8, 4))

	raw := fb.Finish()
	require.Equal(t, keyMeta, raw.FooterSigningKeyMetadata)
	require.NotNil(t, raw.EncryptionAlgorithm)
	require.NotNil(t, raw.EncryptionAlgorithm.AesGcmV1)
	require.Equal(t, props.AadFileUnique(), raw.EncryptionAlgorithm.AesGcmV1.AadFileUnique)
}

// TestFileMetaDataBuilderFinishEncryptedFooterOmitsAlgorithm checks that
// encrypted-footer mode leaves both fields unset on the footer itself: that
// data would be unreadable before the decryption it's meant to bootstrap,
// so it belongs in the external FileCryptoMetaData instead.
func TestFileMetaDataBuilderFinishEncryptedFooterOmitsAlgorithm(t *testing.T) {
	sc := testSchema(t)
	footerKey := []byte("0123456789abcdef")
	props, err := encryption.NewFileEncryptionProperties(footerKey)
	require.NoError(t, err)
	enc := encryption.NewFileEncryptor(props)

	fb := metadata.NewFileMetadataBuilder(sc, metadata.WithFileEncryptor(enc))
	rgb := fb.AppendRowGroup()
	rgb.SetNumRows(1)
	for i := 0; i < sc.NumColumns(); i++ {
		cb, err := rgb.NextColumnChunk()
		require.NoError(t, err)
		_, err = cb.Finish(metadata.ChunkMetaInfo{NumValues: 1}, nil, metadata.EncodingStats{}, nil)
		require.NoError(t, err)
	}
	require.NoError(t, fb.FinishRowGroup(10, 8, 4))

	raw := fb.Finish()
	require.Nil(t, raw.EncryptionAlgorithm)
	require.Nil(t, raw.FooterSigningKeyMetadata)
}
