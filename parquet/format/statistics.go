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

// Statistics is the wire-level per-column-chunk (or per-page) statistics
// structure. It carries both the legacy min/max fields and the modern
// min_value/max_value fields side by side; which pair is authoritative is
// a read-side policy decision made above this package (metadata.Statistics).
type Statistics struct {
	Max             []byte
	Min             []byte
	NullCount       *int64
	DistinctCount   *int64
	MaxValue        []byte
	MinValue        []byte
	IsMaxValueExact *bool
	IsMinValueExact *bool
}

func (s *Statistics) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "Statistics", []field{
		optBinary(1, &s.Max),
		optBinary(2, &s.Min),
		optI64(3, &s.NullCount),
		optI64(4, &s.DistinctCount),
		optBinary(5, &s.MaxValue),
		optBinary(6, &s.MinValue),
		optBool(7, &s.IsMaxValueExact),
		optBool(8, &s.IsMinValueExact),
	})
}

func (s *Statistics) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "Statistics", []field{
		optBinary(1, &s.Max),
		optBinary(2, &s.Min),
		optI64(3, &s.NullCount),
		optI64(4, &s.DistinctCount),
		optBinary(5, &s.MaxValue),
		optBinary(6, &s.MinValue),
		optBool(7, &s.IsMaxValueExact),
		optBool(8, &s.IsMinValueExact),
	})
}

// PageEncodingStats counts how many pages of a given (page type, encoding)
// pair occur in a column chunk.
type PageEncodingStats struct {
	PageType PageType
	Encoding Encoding
	Count    int32
}

func (p *PageEncodingStats) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "PageEncodingStats", []field{
		reqI32Enum(1, &p.PageType),
		reqI32Enum(2, &p.Encoding),
		reqI32(3, &p.Count),
	})
}

func (p *PageEncodingStats) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "PageEncodingStats", []field{
		reqI32Enum(1, &p.PageType),
		reqI32Enum(2, &p.Encoding),
		reqI32(3, &p.Count),
	})
}

// KeyValue is a single file-level key/value metadata entry.
type KeyValue struct {
	Key   string
	Value *string
}

func (k *KeyValue) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "KeyValue", []field{
		reqString(1, &k.Key),
		optString(2, &k.Value),
	})
}

func (k *KeyValue) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "KeyValue", []field{
		reqString(1, &k.Key),
		optString(2, &k.Value),
	})
}
