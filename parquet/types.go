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

package parquet

import "github.com/parquetcore/parquet-core/parquet/format"

// Type is the physical on-disk type of a column.
type Type format.Type

const (
	Type_Boolean           = Type(format.Type_BOOLEAN)
	Type_Int32             = Type(format.Type_INT32)
	Type_Int64             = Type(format.Type_INT64)
	Type_Int96             = Type(format.Type_INT96)
	Type_Float             = Type(format.Type_FLOAT)
	Type_Double            = Type(format.Type_DOUBLE)
	Type_ByteArray          = Type(format.Type_BYTE_ARRAY)
	Type_FixedLenByteArray = Type(format.Type_FIXED_LEN_BYTE_ARRAY)
)

// types holds the Type constants as a namespace, matching the teacher's
// `parquet.Types.Int32`-style access.
var Types = struct {
	Boolean           Type
	Int32             Type
	Int64             Type
	Int96             Type
	Float             Type
	Double            Type
	ByteArray         Type
	FixedLenByteArray Type
}{
	Boolean:           Type_Boolean,
	Int32:             Type_Int32,
	Int64:             Type_Int64,
	Int96:             Type_Int96,
	Float:             Type_Float,
	Double:            Type_Double,
	ByteArray:         Type_ByteArray,
	FixedLenByteArray: Type_FixedLenByteArray,
}

func (t Type) String() string { return format.Type(t).String() }

// Int96 is a 12-byte fixed physical representation (legacy timestamp type).
type Int96 [12]byte

// ByteArray is a variable-length byte sequence physical value.
type ByteArray []byte

// FixedLenByteArray is a fixed-length byte sequence physical value.
type FixedLenByteArray []byte

// Repetition describes how a schema leaf repeats within a record.
type Repetition format.FieldRepetitionType

const (
	Repetition_Required = Repetition(format.FieldRepetitionType_REQUIRED)
	Repetition_Optional = Repetition(format.FieldRepetitionType_OPTIONAL)
	Repetition_Repeated = Repetition(format.FieldRepetitionType_REPEATED)
)

var Repetitions = struct {
	Required Repetition
	Optional Repetition
	Repeated Repetition
}{Repetition_Required, Repetition_Optional, Repetition_Repeated}

func (r Repetition) String() string { return format.FieldRepetitionType(r).String() }

// Encoding identifies how the values (or dictionary indices) of a page are
// serialized.
type Encoding format.Encoding

const (
	Encoding_Plain             = Encoding(format.Encoding_PLAIN)
	Encoding_PlainDictionary   = Encoding(format.Encoding_PLAIN_DICTIONARY)
	Encoding_RLE               = Encoding(format.Encoding_RLE)
	Encoding_BitPacked         = Encoding(format.Encoding_BIT_PACKED)
	Encoding_DeltaBinaryPacked = Encoding(format.Encoding_DELTA_BINARY_PACKED)
	Encoding_DeltaLengthByteArray = Encoding(format.Encoding_DELTA_LENGTH_BYTE_ARRAY)
	Encoding_DeltaByteArray   = Encoding(format.Encoding_DELTA_BYTE_ARRAY)
	Encoding_RLEDict           = Encoding(format.Encoding_RLE_DICTIONARY)
	Encoding_ByteStreamSplit  = Encoding(format.Encoding_BYTE_STREAM_SPLIT)
)

var Encodings = struct {
	Plain                 Encoding
	PlainDictionary       Encoding
	RLE                   Encoding
	BitPacked             Encoding
	DeltaBinaryPacked     Encoding
	DeltaLengthByteArray  Encoding
	DeltaByteArray        Encoding
	RLEDict               Encoding
	ByteStreamSplit       Encoding
}{
	Encoding_Plain, Encoding_PlainDictionary, Encoding_RLE, Encoding_BitPacked,
	Encoding_DeltaBinaryPacked, Encoding_DeltaLengthByteArray, Encoding_DeltaByteArray,
	Encoding_RLEDict, Encoding_ByteStreamSplit,
}

func (e Encoding) String() string { return format.Encoding(e).String() }

// IsDictionaryIndexEncoding reports whether e is used to encode dictionary
// indices (as opposed to plain dictionary values themselves).
func (e Encoding) IsDictionaryIndexEncoding() bool {
	return e == Encoding_RLEDict || e == Encoding_PlainDictionary
}

// Version selects the output format version for the file metadata and the
// default set of encodings used for dictionary-backed columns.
type Version int8

const (
	V1_0 Version = iota
	V2_LATEST
)

func (v Version) String() string {
	if v == V1_0 {
		return "1.0"
	}
	return "2.0"
}

// PageType distinguishes dictionary pages from data pages (v1 and v2).
type PageType format.PageType

const (
	PageType_DataPage       = PageType(format.PageType_DATA_PAGE)
	PageType_IndexPage      = PageType(format.PageType_INDEX_PAGE)
	PageType_DictionaryPage = PageType(format.PageType_DICTIONARY_PAGE)
	PageType_DataPageV2     = PageType(format.PageType_DATA_PAGE_V2)
)
