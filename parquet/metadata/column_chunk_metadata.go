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
	"strings"

	"github.com/parquetcore/parquet-core/parquet"
	"github.com/parquetcore/parquet-core/parquet/compress"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

// ColumnChunkMetaData is the read-side wrapper around a decoded
// format.ColumnChunk (and its ColumnMetaData, once available in plaintext).
// Encrypted-with-column-key chunks carry CryptoMetadata but no readable
// MetaData until a FileDecryptor supplies the column's key; IsMetadataSet
// tells a caller whether it is safe to call the *MetaData accessors.
type ColumnChunkMetaData struct {
	chunk        *format.ColumnChunk
	metaData     *format.ColumnMetaData
	writerVersion *ApplicationVersion
	rowGroupOrdinal int16
	columnOrdinal   int16
}

// NewColumnChunkMetaData wraps chunk, using its inline plaintext MetaData
// if present. Use SetDecryptedMetaData for column-key-encrypted chunks
// once the metadata has been decrypted and deserialized separately.
func NewColumnChunkMetaData(chunk *format.ColumnChunk, writerVersion *ApplicationVersion, rowGroupOrdinal, columnOrdinal int16) *ColumnChunkMetaData {
	return &ColumnChunkMetaData{
		chunk:           chunk,
		metaData:        chunk.MetaData,
		writerVersion:   writerVersion,
		rowGroupOrdinal: rowGroupOrdinal,
		columnOrdinal:   columnOrdinal,
	}
}

// IsMetadataSet reports whether ColumnMetaData fields may be read.
func (c *ColumnChunkMetaData) IsMetadataSet() bool { return c.metaData != nil }

// SetDecryptedMetaData installs metadata recovered by decrypting
// chunk.EncryptedColumnMetadata; called by the file-metadata layer once a
// FileDecryptor is available.
func (c *ColumnChunkMetaData) SetDecryptedMetaData(m *format.ColumnMetaData) { c.metaData = m }

// IsEncryptedWithColumnKey reports whether this chunk's metadata is
// encrypted with a key other than the file footer key, i.e. it must be
// decrypted separately before IsMetadataSet becomes true.
func (c *ColumnChunkMetaData) IsEncryptedWithColumnKey() bool {
	return c.chunk.CryptoMetadata != nil && c.chunk.CryptoMetadata.EncryptionWithColumnKey != nil
}

func (c *ColumnChunkMetaData) ColumnCryptoMetadata() *format.ColumnCryptoMetaData {
	return c.chunk.CryptoMetadata
}

func (c *ColumnChunkMetaData) EncryptedColumnMetadata() []byte {
	return c.chunk.EncryptedColumnMetadata
}

func (c *ColumnChunkMetaData) FileOffset() int64 { return c.chunk.FileOffset }
func (c *ColumnChunkMetaData) FilePath() string {
	if c.chunk.FilePath == nil {
		return ""
	}
	return *c.chunk.FilePath
}

// requireMeta returns the chunk's decoded ColumnMetaData, or a
// MissingColumnKey error when the column is encrypted with a key not yet
// supplied to the reader. That case is expected and recoverable: other
// columns in the same row group remain readable, so callers must be able
// to check with errors.Is rather than the read crashing outright.
func (c *ColumnChunkMetaData) requireMeta() (*format.ColumnMetaData, error) {
	if c.metaData == nil {
		return nil, fmt.Errorf("%w: column metadata not available; column is encrypted with a key not yet supplied", parquet.ErrMissingColumnKey)
	}
	return c.metaData, nil
}

func (c *ColumnChunkMetaData) Type() (format.Type, error) {
	m, err := c.requireMeta()
	if err != nil {
		return 0, err
	}
	return m.Type, nil
}

func (c *ColumnChunkMetaData) NumValues() (int64, error) {
	m, err := c.requireMeta()
	if err != nil {
		return 0, err
	}
	return m.NumValues, nil
}

func (c *ColumnChunkMetaData) PathInSchema() (string, error) {
	m, err := c.requireMeta()
	if err != nil {
		return "", err
	}
	return strings.Join(m.PathInSchema, "."), nil
}

func (c *ColumnChunkMetaData) Compression() (compress.Compression, error) {
	m, err := c.requireMeta()
	if err != nil {
		return 0, err
	}
	return compress.Compression(m.Codec), nil
}

func (c *ColumnChunkMetaData) Encodings() ([]format.Encoding, error) {
	m, err := c.requireMeta()
	if err != nil {
		return nil, err
	}
	return m.Encodings, nil
}

func (c *ColumnChunkMetaData) HasDictionaryPage() (bool, error) {
	m, err := c.requireMeta()
	if err != nil {
		return false, err
	}
	return m.DictionaryPageOffset != nil, nil
}

func (c *ColumnChunkMetaData) DictionaryPageOffset() (int64, error) {
	m, err := c.requireMeta()
	if err != nil {
		return 0, err
	}
	if m.DictionaryPageOffset == nil {
		return 0, nil
	}
	return *m.DictionaryPageOffset, nil
}

func (c *ColumnChunkMetaData) DataPageOffset() (int64, error) {
	m, err := c.requireMeta()
	if err != nil {
		return 0, err
	}
	return m.DataPageOffset, nil
}

func (c *ColumnChunkMetaData) TotalCompressedSize() (int64, error) {
	m, err := c.requireMeta()
	if err != nil {
		return 0, err
	}
	return m.TotalCompressedSize, nil
}

func (c *ColumnChunkMetaData) TotalUncompressedSize() (int64, error) {
	m, err := c.requireMeta()
	if err != nil {
		return 0, err
	}
	return m.TotalUncompressedSize, nil
}

// statisticsCorrect reports whether this chunk's producer is known to
// compute its recorded min/max correctly for its sort order, gating
// whether the legacy min/max fields may be trusted over min_value/
// max_value. The sort order used here is the column's physical-type
// default (schema.DefaultSortOrder): a logical-type annotation can
// override that default, but ColumnChunkMetaData itself carries no
// reference back to the writing schema to look one up.
func (c *ColumnChunkMetaData) statisticsCorrect(m *format.ColumnMetaData) bool {
	if c.writerVersion == nil {
		return true
	}
	sortOrder := schema.DefaultSortOrder(m.Type)
	minEqualsMax := m.Statistics != nil &&
		m.Statistics.Min != nil && m.Statistics.Max != nil &&
		string(m.Statistics.Min) == string(m.Statistics.Max)
	return c.writerVersion.HasCorrectStatistics(m.Type, sortOrder, minEqualsMax)
}

// Statistics returns the resolved read-side statistics view, or an error
// if the chunk's metadata isn't readable yet (see requireMeta).
func (c *ColumnChunkMetaData) Statistics() (Statistics, error) {
	m, err := c.requireMeta()
	if err != nil {
		return Statistics{}, err
	}
	return StatisticsFromThrift(m.Statistics, c.statisticsCorrect(m)), nil
}

func (c *ColumnChunkMetaData) String() string {
	m, err := c.requireMeta()
	if err != nil {
		return fmt.Sprintf("column %d/%d: %v", c.rowGroupOrdinal, c.columnOrdinal, err)
	}
	return fmt.Sprintf("column %s: %d values, %d bytes compressed",
		strings.Join(m.PathInSchema, "."), m.NumValues, m.TotalCompressedSize)
}
