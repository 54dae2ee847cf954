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

// FileMetaData is the file-level footer: the flattened schema, all row
// groups, and (for plaintext-footer encrypted files) the signing algorithm
// and footer signing key metadata.
type FileMetaData struct {
	Version                   int32
	Schema                    []SchemaElement
	NumRows                   int64
	RowGroups                 []RowGroup
	KeyValueMetadata          []KeyValue
	CreatedBy                 *string
	ColumnOrders              []ColumnOrder
	EncryptionAlgorithm       *EncryptionAlgorithm
	FooterSigningKeyMetadata []byte
}

func (f *FileMetaData) fields() []field {
	return []field{
		reqI32(1, &f.Version),
		reqListStruct(2, &f.Schema, func() SchemaElement { return SchemaElement{} }),
		reqI64(3, &f.NumRows),
		reqListStruct(4, &f.RowGroups, func() RowGroup { return RowGroup{} }),
		optListStruct(5, &f.KeyValueMetadata, func() KeyValue { return KeyValue{} }),
		optString(6, &f.CreatedBy),
		optListStruct(7, &f.ColumnOrders, func() ColumnOrder { return ColumnOrder{} }),
		optStructPtr(8, &f.EncryptionAlgorithm, func(v *EncryptionAlgorithm) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return f.EncryptionAlgorithm.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				f.EncryptionAlgorithm = &EncryptionAlgorithm{}
				return f.EncryptionAlgorithm.Read(ctx, iprot)
			}),
		optBinary(9, &f.FooterSigningKeyMetadata),
	}
}

func (f *FileMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "FileMetaData", f.fields())
}

func (f *FileMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "FileMetaData", f.fields())
}
