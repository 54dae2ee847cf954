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

// DataPageHeader describes a v1 data page: its value count, its value
// encoding and the encodings used for the definition/repetition levels
// that precede the values in the (possibly compressed) page body.
type DataPageHeader struct {
	NumValues                int32
	Encoding                 Encoding
	DefinitionLevelEncoding Encoding
	RepetitionLevelEncoding Encoding
	Statistics               *Statistics
}

func (d *DataPageHeader) fields() []field {
	return []field{
		reqI32(1, &d.NumValues),
		reqI32Enum(2, &d.Encoding),
		reqI32Enum(3, &d.DefinitionLevelEncoding),
		reqI32Enum(4, &d.RepetitionLevelEncoding),
		optStructPtr(5, &d.Statistics, func(v *Statistics) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return d.Statistics.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				d.Statistics = &Statistics{}
				return d.Statistics.Read(ctx, iprot)
			}),
	}
}

func (d *DataPageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "DataPageHeader", d.fields())
}

func (d *DataPageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "DataPageHeader", d.fields())
}

// DataPageHeaderV2 describes a v2 data page, where levels are never
// compressed and repeated/null counts are carried explicitly.
type DataPageHeaderV2 struct {
	NumValues                  int32
	NumNulls                   int32
	NumRows                    int32
	Encoding                   Encoding
	DefinitionLevelsByteLength int32
	RepetitionLevelsByteLength int32
	IsCompressed               *bool
	Statistics                 *Statistics
}

func (d *DataPageHeaderV2) fields() []field {
	return []field{
		reqI32(1, &d.NumValues),
		reqI32(2, &d.NumNulls),
		reqI32(3, &d.NumRows),
		reqI32Enum(4, &d.Encoding),
		reqI32(5, &d.DefinitionLevelsByteLength),
		reqI32(6, &d.RepetitionLevelsByteLength),
		optBool(7, &d.IsCompressed),
		optStructPtr(8, &d.Statistics, func(v *Statistics) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return d.Statistics.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				d.Statistics = &Statistics{}
				return d.Statistics.Read(ctx, iprot)
			}),
	}
}

func (d *DataPageHeaderV2) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "DataPageHeaderV2", d.fields())
}

func (d *DataPageHeaderV2) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "DataPageHeaderV2", d.fields())
}

// DictionaryPageHeader precedes a column chunk's single dictionary page.
type DictionaryPageHeader struct {
	NumValues int32
	Encoding  Encoding
	IsSorted  *bool
}

func (d *DictionaryPageHeader) fields() []field {
	return []field{
		reqI32(1, &d.NumValues),
		reqI32Enum(2, &d.Encoding),
		optBool(3, &d.IsSorted),
	}
}

func (d *DictionaryPageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "DictionaryPageHeader", d.fields())
}

func (d *DictionaryPageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "DictionaryPageHeader", d.fields())
}

// PageHeader precedes every page (data or dictionary) in a column chunk's
// byte stream; it is itself a thrift-compact message, optionally followed
// through the encrypted-header framing when the chunk is data-encrypted.
type PageHeader struct {
	Type                  PageType
	UncompressedPageSize int32
	CompressedPageSize   int32
	CRC                   *int32
	DataPageHeader       *DataPageHeader
	DictionaryPageHeader *DictionaryPageHeader
	DataPageHeaderV2     *DataPageHeaderV2
}

func (p *PageHeader) fields() []field {
	return []field{
		reqI32Enum(1, &p.Type),
		reqI32(2, &p.UncompressedPageSize),
		reqI32(3, &p.CompressedPageSize),
		optI32(4, &p.CRC),
		optStructPtr(5, &p.DataPageHeader, func(v *DataPageHeader) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return p.DataPageHeader.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				p.DataPageHeader = &DataPageHeader{}
				return p.DataPageHeader.Read(ctx, iprot)
			}),
		optStructPtr(7, &p.DictionaryPageHeader, func(v *DictionaryPageHeader) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return p.DictionaryPageHeader.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				p.DictionaryPageHeader = &DictionaryPageHeader{}
				return p.DictionaryPageHeader.Read(ctx, iprot)
			}),
		optStructPtr(8, &p.DataPageHeaderV2, func(v *DataPageHeaderV2) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return p.DataPageHeaderV2.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				p.DataPageHeaderV2 = &DataPageHeaderV2{}
				return p.DataPageHeaderV2.Read(ctx, iprot)
			}),
	}
}

func (p *PageHeader) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "PageHeader", p.fields())
}

func (p *PageHeader) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "PageHeader", p.fields())
}
