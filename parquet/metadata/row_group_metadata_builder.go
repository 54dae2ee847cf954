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

	"github.com/parquetcore/parquet-core/parquet"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

// RowGroupMetaDataBuilder accumulates one row group's column chunks as the
// writer moves through the schema's columns.
type RowGroupMetaDataBuilder struct {
	schema   *schema.Schema
	rg       *format.RowGroup
	ordinal  int16
	encryptor *encryption.FileEncryptor
	nextCol  int
	builders []*ColumnChunkMetaDataBuilder
}

func NewRowGroupMetaDataBuilder(sc *schema.Schema, ordinal int16, encryptor *encryption.FileEncryptor) *RowGroupMetaDataBuilder {
	return &RowGroupMetaDataBuilder{schema: sc, rg: &format.RowGroup{Ordinal: &ordinal}, ordinal: ordinal, encryptor: encryptor}
}

// NextColumnChunk starts the builder for the next column in schema order,
// selecting a column-metadata encryptor when the column is encrypted with
// its own key rather than the footer key.
func (b *RowGroupMetaDataBuilder) NextColumnChunk() (*ColumnChunkMetaDataBuilder, error) {
	if b.nextCol >= b.schema.NumColumns() {
		return nil, fmt.Errorf("%w: row group already has metadata for all %d columns", parquet.ErrBuilderMisuse, b.schema.NumColumns())
	}
	descr := b.schema.Column(b.nextCol)
	col := int16(b.nextCol)
	b.nextCol++

	var enc *encryption.Encryptor
	if b.encryptor != nil && b.encryptor.IsColumnEncrypted(descr.Path().String()) {
		if cp := b.encryptor.Properties().ColumnProperties(descr.Path().String()); cp != nil && !cp.IsEncryptedWithFooterKey() {
			enc = b.encryptor.MetadataEncryptor(descr.Path().String())
		}
	}
	cb := NewColumnChunkMetaDataBuilder(descr, enc, b.ordinal, col)

	if b.encryptor != nil && b.encryptor.IsColumnEncrypted(descr.Path().String()) {
		props := b.encryptor.Properties()
		cp := props.ColumnProperties(descr.Path().String())
		if cp == nil || cp.IsEncryptedWithFooterKey() {
			cb.SetCryptoMetadata(true, nil, nil)
		} else {
			cb.SetCryptoMetadata(false, descr.Path(), cp.KeyMetadata())
		}
	}

	b.builders = append(b.builders, cb)
	return cb, nil
}

// SetNumRows records the row group's row count.
func (b *RowGroupMetaDataBuilder) SetNumRows(n int64) { b.rg.NumRows = n }

// Finish assembles the accumulated column chunks into the thrift RowGroup,
// recording the row group's starting file offset and total uncompressed/
// compressed on-disk sizes.
func (b *RowGroupMetaDataBuilder) Finish(totalByteSize, totalCompressedSize, fileOffset int64) (*format.RowGroup, error) {
	if b.nextCol != b.schema.NumColumns() {
		return nil, fmt.Errorf("%w: row group finished with only %d/%d columns written", parquet.ErrBuilderMisuse, b.nextCol, b.schema.NumColumns())
	}
	off := fileOffset
	b.rg.FileOffset = &off
	tcs := totalCompressedSize
	b.rg.TotalCompressedSize = &tcs
	b.rg.TotalByteSize = totalByteSize
	b.rg.Columns = make([]format.ColumnChunk, len(b.builders))
	for i, cb := range b.builders {
		b.rg.Columns[i] = *cb.chunk
	}
	return b.rg, nil
}
