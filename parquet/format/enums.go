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

import "fmt"

// Type is the physical on-disk representation of a primitive schema leaf.
type Type int32

const (
	Type_BOOLEAN              Type = 0
	Type_INT32                Type = 1
	Type_INT64                Type = 2
	Type_INT96                Type = 3
	Type_FLOAT                Type = 4
	Type_DOUBLE               Type = 5
	Type_BYTE_ARRAY            Type = 6
	Type_FIXED_LEN_BYTE_ARRAY Type = 7
)

var typeNames = map[Type]string{
	Type_BOOLEAN: "BOOLEAN", Type_INT32: "INT32", Type_INT64: "INT64",
	Type_INT96: "INT96", Type_FLOAT: "FLOAT", Type_DOUBLE: "DOUBLE",
	Type_BYTE_ARRAY: "BYTE_ARRAY", Type_FIXED_LEN_BYTE_ARRAY: "FIXED_LEN_BYTE_ARRAY",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// FieldRepetitionType is the repetition of a schema element.
type FieldRepetitionType int32

const (
	FieldRepetitionType_REQUIRED FieldRepetitionType = 0
	FieldRepetitionType_OPTIONAL FieldRepetitionType = 1
	FieldRepetitionType_REPEATED FieldRepetitionType = 2
)

func (r FieldRepetitionType) String() string {
	switch r {
	case FieldRepetitionType_REQUIRED:
		return "REQUIRED"
	case FieldRepetitionType_OPTIONAL:
		return "OPTIONAL"
	case FieldRepetitionType_REPEATED:
		return "REPEATED"
	}
	return fmt.Sprintf("FieldRepetitionType(%d)", int32(r))
}

// Encoding identifies a page value (or dictionary index) serialization.
type Encoding int32

const (
	Encoding_PLAIN                    Encoding = 0
	Encoding_PLAIN_DICTIONARY         Encoding = 2
	Encoding_RLE                      Encoding = 3
	Encoding_BIT_PACKED               Encoding = 4
	Encoding_DELTA_BINARY_PACKED      Encoding = 5
	Encoding_DELTA_LENGTH_BYTE_ARRAY  Encoding = 6
	Encoding_DELTA_BYTE_ARRAY         Encoding = 7
	Encoding_RLE_DICTIONARY           Encoding = 8
	Encoding_BYTE_STREAM_SPLIT        Encoding = 9
)

var encodingNames = map[Encoding]string{
	Encoding_PLAIN: "PLAIN", Encoding_PLAIN_DICTIONARY: "PLAIN_DICTIONARY",
	Encoding_RLE: "RLE", Encoding_BIT_PACKED: "BIT_PACKED",
	Encoding_DELTA_BINARY_PACKED: "DELTA_BINARY_PACKED",
	Encoding_DELTA_LENGTH_BYTE_ARRAY: "DELTA_LENGTH_BYTE_ARRAY",
	Encoding_DELTA_BYTE_ARRAY: "DELTA_BYTE_ARRAY",
	Encoding_RLE_DICTIONARY: "RLE_DICTIONARY",
	Encoding_BYTE_STREAM_SPLIT: "BYTE_STREAM_SPLIT",
}

func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Encoding(%d)", int32(e))
}

// CompressionCodec identifies the column-chunk-level compressor.
type CompressionCodec int32

const (
	CompressionCodec_UNCOMPRESSED CompressionCodec = 0
	CompressionCodec_SNAPPY       CompressionCodec = 1
	CompressionCodec_GZIP         CompressionCodec = 2
	CompressionCodec_LZO          CompressionCodec = 3
	CompressionCodec_BROTLI       CompressionCodec = 4
	CompressionCodec_LZ4          CompressionCodec = 5
	CompressionCodec_ZSTD         CompressionCodec = 6
	CompressionCodec_LZ4_RAW      CompressionCodec = 7
)

func (c CompressionCodec) String() string {
	switch c {
	case CompressionCodec_UNCOMPRESSED:
		return "UNCOMPRESSED"
	case CompressionCodec_SNAPPY:
		return "SNAPPY"
	case CompressionCodec_GZIP:
		return "GZIP"
	case CompressionCodec_LZO:
		return "LZO"
	case CompressionCodec_BROTLI:
		return "BROTLI"
	case CompressionCodec_LZ4:
		return "LZ4"
	case CompressionCodec_ZSTD:
		return "ZSTD"
	case CompressionCodec_LZ4_RAW:
		return "LZ4_RAW"
	}
	return fmt.Sprintf("CompressionCodec(%d)", int32(c))
}

// PageType distinguishes data pages (v1/v2), dictionary pages and the
// (unimplemented by THE CORE) index page.
type PageType int32

const (
	PageType_DATA_PAGE       PageType = 0
	PageType_INDEX_PAGE      PageType = 1
	PageType_DICTIONARY_PAGE PageType = 2
	PageType_DATA_PAGE_V2    PageType = 3
)

func (p PageType) String() string {
	switch p {
	case PageType_DATA_PAGE:
		return "DATA_PAGE"
	case PageType_INDEX_PAGE:
		return "INDEX_PAGE"
	case PageType_DICTIONARY_PAGE:
		return "DICTIONARY_PAGE"
	case PageType_DATA_PAGE_V2:
		return "DATA_PAGE_V2"
	}
	return fmt.Sprintf("PageType(%d)", int32(p))
}

// ConvertedType is the legacy (pre-LogicalType) converted-type annotation
// on a schema element; every value of the Thrift enum is named below.
type ConvertedType int32

const (
	ConvertedType_UTF8             ConvertedType = 0
	ConvertedType_MAP              ConvertedType = 1
	ConvertedType_MAP_KEY_VALUE    ConvertedType = 2
	ConvertedType_LIST             ConvertedType = 3
	ConvertedType_ENUM             ConvertedType = 4
	ConvertedType_DECIMAL          ConvertedType = 5
	ConvertedType_DATE             ConvertedType = 6
	ConvertedType_TIME_MILLIS      ConvertedType = 7
	ConvertedType_TIME_MICROS      ConvertedType = 8
	ConvertedType_TIMESTAMP_MILLIS ConvertedType = 9
	ConvertedType_TIMESTAMP_MICROS ConvertedType = 10
	ConvertedType_UINT_8           ConvertedType = 11
	ConvertedType_UINT_16          ConvertedType = 12
	ConvertedType_UINT_32          ConvertedType = 13
	ConvertedType_UINT_64          ConvertedType = 14
	ConvertedType_INT_8            ConvertedType = 15
	ConvertedType_INT_16           ConvertedType = 16
	ConvertedType_INT_32           ConvertedType = 17
	ConvertedType_INT_64           ConvertedType = 18
	ConvertedType_JSON             ConvertedType = 19
	ConvertedType_BSON             ConvertedType = 20
	ConvertedType_INTERVAL         ConvertedType = 21
)
