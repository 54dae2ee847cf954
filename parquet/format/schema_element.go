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

// SchemaElement is one node (leaf or group) of the flattened, pre-order
// schema tree stored in FileMetaData.Schema.
type SchemaElement struct {
	Type           *Type
	TypeLength     *int32
	RepetitionType *FieldRepetitionType
	Name           string
	NumChildren    *int32
	ConvertedType  *ConvertedType
	Scale          *int32
	Precision      *int32
	FieldID        *int32
}

func (s *SchemaElement) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "SchemaElement", []field{
		optI32Enum(1, &s.Type),
		optI32(2, &s.TypeLength),
		optI32Enum(3, &s.RepetitionType),
		reqString(4, &s.Name),
		optI32(5, &s.NumChildren),
		optI32Enum(6, &s.ConvertedType),
		optI32(7, &s.Scale),
		optI32(8, &s.Precision),
		optI32(9, &s.FieldID),
	})
}

func (s *SchemaElement) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "SchemaElement", []field{
		optI32Enum(1, &s.Type),
		optI32(2, &s.TypeLength),
		optI32Enum(3, &s.RepetitionType),
		reqString(4, &s.Name),
		optI32(5, &s.NumChildren),
		optI32Enum(6, &s.ConvertedType),
		optI32(7, &s.Scale),
		optI32(8, &s.Precision),
		optI32(9, &s.FieldID),
	})
}

// TypeDefinedOrder is the (empty) marker struct meaning "use the type's
// natural/default sort order", the only ColumnOrder variant THE CORE emits.
type TypeDefinedOrder struct{}

func (t *TypeDefinedOrder) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "TypeDefinedOrder", nil)
}

func (t *TypeDefinedOrder) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "TypeDefinedOrder", nil)
}

// ColumnOrder is a union; TypeOrder is the only populated member THE CORE
// produces or consults.
type ColumnOrder struct {
	TypeOrder *TypeDefinedOrder
}

func (c *ColumnOrder) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "ColumnOrder", []field{
		optStructPtr(1, &c.TypeOrder, func(v *TypeDefinedOrder) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return c.TypeOrder.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				c.TypeOrder = &TypeDefinedOrder{}
				return c.TypeOrder.Read(ctx, iprot)
			}),
	})
}

func (c *ColumnOrder) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "ColumnOrder", []field{
		optStructPtr(1, &c.TypeOrder, func(v *TypeDefinedOrder) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return c.TypeOrder.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				c.TypeOrder = &TypeDefinedOrder{}
				return c.TypeOrder.Read(ctx, iprot)
			}),
	})
}

func NewTypeOrderColumnOrder() ColumnOrder {
	return ColumnOrder{TypeOrder: &TypeDefinedOrder{}}
}
