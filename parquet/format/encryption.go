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

// AesGcmV1 is the AAD metadata carried by the AES_GCM_V1 algorithm variant.
type AesGcmV1 struct {
	AadPrefix        []byte
	AadFileUnique    []byte
	SupplyAadPrefix *bool
}

func (a *AesGcmV1) fields() []field {
	return []field{
		optBinary(1, &a.AadPrefix),
		optBinary(2, &a.AadFileUnique),
		optBool(3, &a.SupplyAadPrefix),
	}
}

func (a *AesGcmV1) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "AesGcmV1", a.fields())
}

func (a *AesGcmV1) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "AesGcmV1", a.fields())
}

// AesGcmCtrV1 carries the same AAD metadata shape as AesGcmV1 but selects
// the CTR-for-bodies/GCM-for-headers cipher variant.
type AesGcmCtrV1 struct {
	AadPrefix       []byte
	AadFileUnique   []byte
	SupplyAadPrefix *bool
}

func (a *AesGcmCtrV1) fields() []field {
	return []field{
		optBinary(1, &a.AadPrefix),
		optBinary(2, &a.AadFileUnique),
		optBool(3, &a.SupplyAadPrefix),
	}
}

func (a *AesGcmCtrV1) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "AesGcmCtrV1", a.fields())
}

func (a *AesGcmCtrV1) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "AesGcmCtrV1", a.fields())
}

// EncryptionAlgorithm is a union over the two supported cipher variants.
type EncryptionAlgorithm struct {
	AesGcmV1    *AesGcmV1
	AesGcmCtrV1 *AesGcmCtrV1
}

func (e *EncryptionAlgorithm) fields() []field {
	return []field{
		optStructPtr(1, &e.AesGcmV1, func(v *AesGcmV1) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return e.AesGcmV1.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				e.AesGcmV1 = &AesGcmV1{}
				return e.AesGcmV1.Read(ctx, iprot)
			}),
		optStructPtr(2, &e.AesGcmCtrV1, func(v *AesGcmCtrV1) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return e.AesGcmCtrV1.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				e.AesGcmCtrV1 = &AesGcmCtrV1{}
				return e.AesGcmCtrV1.Read(ctx, iprot)
			}),
	}
}

func (e *EncryptionAlgorithm) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "EncryptionAlgorithm", e.fields())
}

func (e *EncryptionAlgorithm) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "EncryptionAlgorithm", e.fields())
}

// FileCryptoMetaData precedes the (encrypted) FileMetaData in an
// encrypted-footer file.
type FileCryptoMetaData struct {
	EncryptionAlgorithm      EncryptionAlgorithm
	KeyMetadata              []byte
}

func (f *FileCryptoMetaData) fields() []field {
	return []field{
		reqStruct(1, &f.EncryptionAlgorithm),
		optBinary(2, &f.KeyMetadata),
	}
}

func (f *FileCryptoMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "FileCryptoMetaData", f.fields())
}

func (f *FileCryptoMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "FileCryptoMetaData", f.fields())
}

// EncryptionWithFooterKey is the (empty) marker meaning a column's
// metadata/data is encrypted with the file footer key.
type EncryptionWithFooterKey struct{}

func (e *EncryptionWithFooterKey) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "EncryptionWithFooterKey", nil)
}

func (e *EncryptionWithFooterKey) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "EncryptionWithFooterKey", nil)
}

// EncryptionWithColumnKey names the column's own key metadata.
type EncryptionWithColumnKey struct {
	PathInSchema []string
	KeyMetadata  []byte
}

func (e *EncryptionWithColumnKey) fields() []field {
	return []field{
		reqListString(1, &e.PathInSchema),
		optBinary(2, &e.KeyMetadata),
	}
}

func (e *EncryptionWithColumnKey) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "EncryptionWithColumnKey", e.fields())
}

func (e *EncryptionWithColumnKey) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "EncryptionWithColumnKey", e.fields())
}

// ColumnCryptoMetaData is a union over the two ways a column chunk can be
// encrypted.
type ColumnCryptoMetaData struct {
	EncryptionWithFooterKey *EncryptionWithFooterKey
	EncryptionWithColumnKey *EncryptionWithColumnKey
}

func (c *ColumnCryptoMetaData) fields() []field {
	return []field{
		optStructPtr(1, &c.EncryptionWithFooterKey, func(v *EncryptionWithFooterKey) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return c.EncryptionWithFooterKey.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				c.EncryptionWithFooterKey = &EncryptionWithFooterKey{}
				return c.EncryptionWithFooterKey.Read(ctx, iprot)
			}),
		optStructPtr(2, &c.EncryptionWithColumnKey, func(v *EncryptionWithColumnKey) bool { return v == nil },
			func(ctx context.Context, oprot thrift.TProtocol) error { return c.EncryptionWithColumnKey.Write(ctx, oprot) },
			func(ctx context.Context, iprot thrift.TProtocol) error {
				c.EncryptionWithColumnKey = &EncryptionWithColumnKey{}
				return c.EncryptionWithColumnKey.Read(ctx, iprot)
			}),
	}
}

func (c *ColumnCryptoMetaData) Write(ctx context.Context, oprot thrift.TProtocol) error {
	return writeStruct(ctx, oprot, "ColumnCryptoMetaData", c.fields())
}

func (c *ColumnCryptoMetaData) Read(ctx context.Context, iprot thrift.TProtocol) error {
	return readStruct(ctx, iprot, "ColumnCryptoMetaData", c.fields())
}
