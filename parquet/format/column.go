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

package format

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"
)

// ColumnMetaData is the per-column-chunk metadata: type, encodings,
// offsets, sizes and (optional) statistics. When a column is encrypted
// with a column key, this struct may be entirely absent from the plaintext
// footer (see ColumnChunk.EncryptedColumnMetadata).
type ColumnMetaData struct {
	Type                  Type
	Encodings             []Encoding
	PathInSchema          []string
	Codec                 CompressionCodec
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	KeyValueMetadata      []KeyValue
	DataPageOffset        int64
	IndexPageOffset       *int64
	DictionaryPageOffset  *int64
	Statistics            *Statistics
	EncodingStats         []PageEncodingStats
	BloomFilterOffset     *int64
	BloomFilterLength     *int32
}

func (c *ColumnMetaData) fields() []field {
	return []field{
		reqI32Enum(1, &c.Type),
		reqListI32Enum(2, &c.Encodings),
		reqListString(3, &c.PathInSchema),
		reqI32Enum(4, &c.Codec),
		reqI64(5, &c.NumValues),
		reqI64(6, &c.TotalUncompressedSize),
		reqI64(7, &c.TotalCompressedSize),
		optListStruct(8, &c.KeyValueMetadata, func() KeyValue { return KeyValue{} }),
		reqI64(9, &c.DataPageOffset),
		optI64(10, &c.IndexPageOffset),
		optI64(11, &c.DictionaryPageOffset),
		optStructPtr(12, &c.Statistics, func(v *Statistics) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return c.Statistics.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				c.Statistics = &Statistics{}
				return c.Statistics.Read(ctx, iprot)
			}),
		optListStruct(13, &c.EncodingStats, func() PageEncodingStats { return PageEncodingStats{} }),
		optI64(14, &c.BloomFilterOffset),
		optI32(15, &c.BloomFilterLength),
	}
}

func (c *ColumnMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "ColumnMetaData", c.fields())
}

func (c *ColumnMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "ColumnMetaData", c.fields())
}

// ColumnChunk is the file-level pointer to a column's data plus either its
// plaintext metadata, a redacted copy, or an encrypted blob thereof.
type ColumnChunk struct {
	FilePath                 *string
	FileOffset               int64
	MetaData                 *ColumnMetaData
	OffsetIndexOffset        *int64
	OffsetIndexLength        *int32
	ColumnIndexOffset        *int64
	ColumnIndexLength        *int32
	CryptoMetadata           *ColumnCryptoMetaData
	EncryptedColumnMetadata []byte
}

func (c *ColumnChunk) fields() []field {
	return []field{
		optString(1, &c.FilePath),
		reqI64(2, &c.FileOffset),
		optStructPtr(3, &c.MetaData, func(v *ColumnMetaData) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return c.MetaData.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				c.MetaData = &ColumnMetaData{}
				return c.MetaData.Read(ctx, iprot)
			}),
		optI64(4, &c.OffsetIndexOffset),
		optI32(5, &c.OffsetIndexLength),
		optI64(6, &c.ColumnIndexOffset),
		optI32(7, &c.ColumnIndexLength),
		optStructPtr(8, &c.CryptoMetadata, func(v *ColumnCryptoMetaData) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return c.CryptoMetadata.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				c.CryptoMetadata = &ColumnCryptoMetaData{}
				return c.CryptoMetadata.Read(ctx, iprot)
			}),
		optBinary(9, &c.EncryptedColumnMetadata),
	}
}

func (c *ColumnChunk) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "ColumnChunk", c.fields())
}

func (c *ColumnChunk) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "ColumnChunk", c.fields())
}

// RowGroup is an ordered set of column chunks spanning the same row range.
type RowGroup struct {
	Columns             []ColumnChunk
	TotalByteSize       int64
	NumRows             int64
	FileOffset          *int64
	TotalCompressedSize *int64
	Ordinal             *int16
}

func (r *RowGroup) fields() []field {
	return []field{
		reqListStruct(1, &r.Columns, func() ColumnChunk { return ColumnChunk{} }),
		reqI64(2, &r.TotalByteSize),
		reqI64(3, &r.NumRows),
		optI64(5, &r.FileOffset),
		optI64(6, &r.TotalCompressedSize),
		optI16(7, &r.Ordinal),
	}
}

func (r *RowGroup) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "RowGroup", r.fields())
}

func (r *RowGroup) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "RowGroup", r.fields())
}
