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

package metadata

import (
	"fmt"

	"github.com/parquetcore/parquet-core/parquet/compress"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/internal/thriftutil"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

// ChunkMetaInfo is the page-writer-collected summary handed to
// ColumnChunkMetaDataBuilder.Finish once a column chunk has been fully
// written: byte offsets, sizes, encodings actually used, and accumulated
// statistics. Grounded on parquet-cpp's
// ColumnChunkMetaDataBuilder::Finish(...) parameter list (metadata.cc).
type ChunkMetaInfo struct {
	NumValues             int64
	DictionaryPageOffset  int64
	IndexPageOffset       int64
	DataPageOffset        int64
	CompressedSize        int64
	UncompressedSize      int64
	HasDictionaryPage     bool
}

// EncodingStats records, for one column chunk, how many pages of each
// (page type, encoding) pair were written.
type EncodingStats map[encodingStatsKey]int32

type encodingStatsKey struct {
	PageType format.PageType
	Encoding format.Encoding
}

func (e EncodingStats) Add(pt format.PageType, enc format.Encoding) {
	e[encodingStatsKey{pt, enc}]++
}

// ColumnChunkMetaDataBuilder accumulates one column chunk's metadata as
// the page writer produces pages, then serializes (and, for a
// column-key-encrypted column, encrypts) it into the ColumnChunk that
// belongs in the row group's thrift RowGroup struct.
type ColumnChunkMetaDataBuilder struct {
	descr        *schema.ColumnDescriptor
	chunk        *format.ColumnChunk
	meta         *format.ColumnMetaData
	encryptor    *encryption.Encryptor
	rowGroupOrdinal int16
	columnOrdinal   int16
}

// NewColumnChunkMetaDataBuilder starts a fresh builder for one column
// chunk at the given file offset; encryptor is nil for an unencrypted or
// footer-key-encrypted column (whose metadata rides unencrypted, or
// encrypted only as part of the whole footer).
func NewColumnChunkMetaDataBuilder(descr *schema.ColumnDescriptor, encryptor *encryption.Encryptor, rowGroupOrdinal, columnOrdinal int16) *ColumnChunkMetaDataBuilder {
	meta := &format.ColumnMetaData{
		Type:         descr.PhysicalType(),
		PathInSchema: descr.Path(),
	}
	b := &ColumnChunkMetaDataBuilder{
		descr:           descr,
		chunk:           &format.ColumnChunk{MetaData: meta},
		meta:            meta,
		encryptor:       encryptor,
		rowGroupOrdinal: rowGroupOrdinal,
		columnOrdinal:   columnOrdinal,
	}
	return b
}

func (b *ColumnChunkMetaDataBuilder) SetFileOffset(off int64) { b.chunk.FileOffset = off }

// SetCodec records the compression codec used for every page in the chunk.
func (b *ColumnChunkMetaDataBuilder) SetCodec(c compress.Compression) {
	b.meta.Codec = format.CompressionCodec(c)
}

// AddEncoding records one more distinct encoding used somewhere in the
// chunk (deduplicated by the caller or, defensively, here).
func (b *ColumnChunkMetaDataBuilder) AddEncoding(e format.Encoding) {
	for _, existing := range b.meta.Encodings {
		if existing == e {
			return
		}
	}
	b.meta.Encodings = append(b.meta.Encodings, e)
}

// SetEncodings replaces the chunk's encodings list wholesale, deduplicating
// as it goes. Used by the page writer to install the deterministically
// computed encodings list (see ComputeChunkEncodings) once at Finish, rather
// than accumulating it ad hoc as pages are written.
func (b *ColumnChunkMetaDataBuilder) SetEncodings(encs []format.Encoding) {
	b.meta.Encodings = nil
	for _, e := range encs {
		b.AddEncoding(e)
	}
}

func (b *ColumnChunkMetaDataBuilder) SetStats(stats *EncodedStatistics) {
	b.meta.Statistics = stats.ToThrift()
}

func (b *ColumnChunkMetaDataBuilder) SetKeyValueMetadata(kv map[string]string) {
	for k, v := range kv {
		val := v
		b.meta.KeyValueMetadata = append(b.meta.KeyValueMetadata, format.KeyValue{Key: k, Value: &val})
	}
}

// SetCryptoMetadata attaches the column's encryption descriptor: either
// footer-key inheritance or the column's own key metadata, matching
// parquet-cpp's ColumnCryptoMetaData union.
func (b *ColumnChunkMetaDataBuilder) SetCryptoMetadata(withFooterKey bool, pathInSchema []string, keyMetadata []byte) {
	if withFooterKey {
		b.chunk.CryptoMetadata = &format.ColumnCryptoMetaData{EncryptionWithFooterKey: &format.EncryptionWithFooterKey{}}
		return
	}
	b.chunk.CryptoMetadata = &format.ColumnCryptoMetaData{
		EncryptionWithColumnKey: &format.EncryptionWithColumnKey{PathInSchema: pathInSchema, KeyMetadata: keyMetadata},
	}
}

// Finish records the page-writer's final byte-offset/size/encoding-stats
// summary into ColumnMetaData, then — if this column is encrypted with its
// own column key — serializes and encrypts that ColumnMetaData into
// EncryptedColumnMetadata and clears the plaintext MetaData field so the
// footer never carries it in the clear. Grounded on
// ColumnChunkMetaDataBuilder::Finish (metadata.cc) and
// InternalFileEncryptor's per-column encryptor selection
// (internal_file_encryptor.h).
func (b *ColumnChunkMetaDataBuilder) Finish(info ChunkMetaInfo, stats *EncodedStatistics, encodingStats EncodingStats, fileAad []byte) (*format.ColumnChunk, error) {
	b.meta.NumValues = info.NumValues
	b.meta.TotalCompressedSize = info.CompressedSize
	b.meta.TotalUncompressedSize = info.UncompressedSize
	b.meta.DataPageOffset = info.DataPageOffset
	if info.HasDictionaryPage {
		off := info.DictionaryPageOffset
		b.meta.DictionaryPageOffset = &off
	}
	if stats != nil && stats.IsSet() {
		b.SetStats(stats)
	}
	for k, count := range encodingStats {
		b.meta.EncodingStats = append(b.meta.EncodingStats, format.PageEncodingStats{
			PageType: k.PageType, Encoding: k.Encoding, Count: count,
		})
	}

	if b.encryptor == nil || b.chunk.CryptoMetadata == nil || b.chunk.CryptoMetadata.EncryptionWithColumnKey == nil {
		return b.chunk, nil
	}

	aad := encryption.CreateModuleAad(fileAad, encryption.ModuleColumnMetaData, b.rowGroupOrdinal, b.columnOrdinal, 0, false)
	sealed, err := thriftutil.SerializeEncrypted(b.meta, b.encryptor, aad)
	if err != nil {
		return nil, fmt.Errorf("parquet: encrypting column metadata for %q: %w", b.descr.Path().String(), err)
	}
	b.chunk.EncryptedColumnMetadata = sealed
	b.chunk.MetaData = nil
	return b.chunk, nil
}
