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

package file_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet/compress"
	"github.com/parquetcore/parquet-core/parquet/file"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/metadata"
)

func TestPageWriterUnencryptedDataAndDictionaryPages(t *testing.T) {
	sc := footerTestSchema(t)
	descr := sc.Column(0)

	var sink bytes.Buffer
	cb := metadata.NewColumnChunkMetaDataBuilder(descr, nil, 0, 0)
	cfg := file.PageWriterConfig{Codec: compress.Codecs.Snappy, CompressionLevel: compress.DefaultCompressionLevel, DataPageVersion: 1}

	pw, err := file.NewPageWriter(&sink, descr, cfg, cb, 0, 0, 0)
	require.NoError(t, err)

	require.NoError(t, pw.WriteDictionaryPage(bytes.Repeat([]byte{1, 2, 3, 4}, 20), 20, format.Encoding_PLAIN))

	stats := (&metadata.EncodedStatistics{}).SetMin(metadata.EncodePlainInt32(1)).SetMax(metadata.EncodePlainInt32(20))
	require.NoError(t, pw.WriteDataPageV1(file.DataPageInfo{
		NumValues: 20,
		Encoding:  format.Encoding_RLE_DICTIONARY,
		Values:    bytes.Repeat([]byte{9, 9, 9, 9}, 20),
		Stats:     stats,
	}))

	chunk, err := pw.Close(20, stats)
	require.NoError(t, err)
	require.NotNil(t, chunk.MetaData)
	require.True(t, sink.Len() > 0)
	require.NotNil(t, chunk.MetaData.DictionaryPageOffset)
	require.EqualValues(t, 0, *chunk.MetaData.DictionaryPageOffset)
	require.EqualValues(t, 20, chunk.MetaData.NumValues)
	require.Contains(t, chunk.MetaData.Encodings, format.Encoding_PLAIN)
	require.Contains(t, chunk.MetaData.Encodings, format.Encoding_RLE_DICTIONARY)
	require.Contains(t, chunk.MetaData.Encodings, format.Encoding_RLE)
	require.Greater(t, chunk.MetaData.TotalUncompressedSize, int64(0))
	require.Greater(t, chunk.MetaData.TotalCompressedSize, int64(0))
}

func TestComputeChunkEncodingsDictionary(t *testing.T) {
	encs := file.ComputeChunkEncodings(true, false, format.Encoding_PLAIN)
	require.ElementsMatch(t, []format.Encoding{format.Encoding_RLE_DICTIONARY, format.Encoding_PLAIN, format.Encoding_RLE}, encs)
}

func TestComputeChunkEncodingsNonDictionary(t *testing.T) {
	encs := file.ComputeChunkEncodings(false, false, format.Encoding_DELTA_BINARY_PACKED)
	require.ElementsMatch(t, []format.Encoding{format.Encoding_DELTA_BINARY_PACKED, format.Encoding_RLE}, encs)
}

func TestComputeChunkEncodingsDictionaryFallback(t *testing.T) {
	encs := file.ComputeChunkEncodings(true, true, format.Encoding_PLAIN)
	require.ElementsMatch(t, []format.Encoding{format.Encoding_RLE_DICTIONARY, format.Encoding_PLAIN, format.Encoding_RLE}, encs)
	require.Len(t, encs, 3, "PLAIN from the fallback dedups against the dictionary page's own PLAIN encoding")
}

func TestBufferedPageWriterFlushShiftsOffsets(t *testing.T) {
	sc := footerTestSchema(t)
	descr := sc.Column(0)

	cb := metadata.NewColumnChunkMetaDataBuilder(descr, nil, 0, 0)
	cfg := file.PageWriterConfig{Codec: compress.Codecs.Uncompressed, CompressionLevel: compress.DefaultCompressionLevel}

	bw, err := file.NewBufferedPageWriter(descr, cfg, cb, 0, 0)
	require.NoError(t, err)

	stats := (&metadata.EncodedStatistics{}).SetMin(metadata.EncodePlainInt32(1)).SetMax(metadata.EncodePlainInt32(5))
	require.NoError(t, bw.WriteDataPageV1(file.DataPageInfo{
		NumValues: 5, Encoding: format.Encoding_PLAIN, Values: []byte{1, 2, 3, 4, 5}, Stats: stats,
	}))
	require.Greater(t, bw.Buffered(), int64(0))

	var sink bytes.Buffer
	sink.WriteString("preceding row group bytes")
	flushOffset := int64(sink.Len())

	chunk, err := bw.Flush(&sink, flushOffset, 5, stats)
	require.NoError(t, err)
	require.Equal(t, flushOffset, chunk.FileOffset)
	require.Equal(t, flushOffset, chunk.MetaData.DataPageOffset)
	require.EqualValues(t, 5, chunk.MetaData.NumValues)
	require.Contains(t, chunk.MetaData.Encodings, format.Encoding_RLE)
}

func TestPageWriterDictionaryFallbackState(t *testing.T) {
	sc := footerTestSchema(t)
	descr := sc.Column(0)
	var sink bytes.Buffer
	cb := metadata.NewColumnChunkMetaDataBuilder(descr, nil, 0, 0)
	cfg := file.PageWriterConfig{Codec: compress.Codecs.Uncompressed, CompressionLevel: compress.DefaultCompressionLevel}

	pw, err := file.NewPageWriter(&sink, descr, cfg, cb, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, file.DictActive, pw.DictionaryState())

	pw.FallBackToPlain()
	require.Equal(t, file.DictFallback, pw.DictionaryState())
}

func TestPageWriterEncryptedColumnProducesDistinctFramingPerPage(t *testing.T) {
	sc := footerTestSchema(t)
	descr := sc.Column(0)

	footerKey := []byte("0123456789abcdef")
	props, err := encryption.NewFileEncryptionProperties(footerKey, encryption.WithAlg(encryption.AesGcmV1))
	require.NoError(t, err)
	fileEnc := encryption.NewFileEncryptor(props)

	var sink bytes.Buffer
	cb := metadata.NewColumnChunkMetaDataBuilder(descr, fileEnc.MetadataEncryptor(descr.Path().String()), 0, 0)
	cfg := file.PageWriterConfig{Codec: compress.Codecs.Uncompressed, CompressionLevel: compress.DefaultCompressionLevel, Encryptor: fileEnc}

	pw, err := file.NewPageWriter(&sink, descr, cfg, cb, 0, 0, 0)
	require.NoError(t, err)

	stats := (&metadata.EncodedStatistics{}).SetMin(metadata.EncodePlainInt32(1)).SetMax(metadata.EncodePlainInt32(5))
	require.NoError(t, pw.WriteDataPageV1(file.DataPageInfo{
		NumValues: 5, Encoding: format.Encoding_PLAIN, Values: []byte{1, 2, 3, 4, 5}, Stats: stats,
	}))
	require.NoError(t, pw.WriteDataPageV1(file.DataPageInfo{
		NumValues: 5, Encoding: format.Encoding_PLAIN, Values: []byte{1, 2, 3, 4, 5}, Stats: stats,
	}))

	chunk, err := pw.Close(10, stats)
	require.NoError(t, err)
	require.NotNil(t, chunk.MetaData) // footer-key columns keep plaintext MetaData until the whole footer is encrypted
	require.True(t, sink.Len() > 0)
}
