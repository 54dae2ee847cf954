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

// Package thriftutil wraps the format package's thrift-compact-protocol
// structs with the (de)serialization entry points spec.md §6 calls "the
// thrift codec": (de)serialize to/from a byte slice, optionally sealing/
// opening the message as one AES-GCM ciphertext module when a module is
// encrypted. Grounded on parquet-cpp's thrift.h SerializeThriftMsg/
// DeserializeThriftMsg helpers.
package thriftutil

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/parquetcore/parquet-core/parquet"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
)

// Message is any of the format package's thrift structs.
type Message interface {
	Write(ctx context.Context, oprot thrift.TProtocol) error
	Read(ctx context.Context, iprot thrift.TProtocol) error
}

// Serialize encodes msg with the thrift compact protocol and returns the
// raw bytes, unencrypted.
func Serialize(msg Message) ([]byte, error) {
	buf := format.NewMemoryBuffer(1024)
	proto := format.NewCompactProtocol(buf)
	ctx := context.Background()
	if err := msg.Write(ctx, proto); err != nil {
		return nil, fmt.Errorf("parquet: thrift serialize failed: %w", err)
	}
	return buf.Bytes(), nil
}

// SerializeEncrypted encodes msg and then seals it as a single ciphertext
// module under aad using enc, returning the framed
// len || nonce || ciphertext || tag bytes.
func SerializeEncrypted(msg Message, enc *encryption.Encryptor, aad []byte) ([]byte, error) {
	plain, err := Serialize(msg)
	if err != nil {
		return nil, err
	}
	sealed, err := enc.Encrypt(plain, aad)
	if err != nil {
		return nil, fmt.Errorf("parquet: thrift message encryption failed: %w", err)
	}
	return sealed, nil
}

// Deserialize decodes msg's fields from the (unencrypted) thrift compact
// protocol bytes in buf.
func Deserialize(buf []byte, msg Message) error {
	trans := format.NewMemoryBuffer(len(buf))
	if _, err := trans.Write(buf); err != nil {
		return fmt.Errorf("parquet: thrift deserialize failed: %w", err)
	}
	proto := format.NewCompactProtocol(trans)
	if err := msg.Read(context.Background(), proto); err != nil {
		return fmt.Errorf("%w: %v", parquet.ErrDeserializeFailed, err)
	}
	return nil
}

// DeserializePrefix decodes msg from the bytes at the start of buf and
// returns how many of them it consumed, so a caller can locate whatever
// data immediately follows it in a shared buffer (e.g. the sealed footer
// bytes that follow a FileCryptoMetaData prefix).
func DeserializePrefix(buf []byte, msg Message) (consumed int, err error) {
	trans := format.NewMemoryBuffer(len(buf))
	if _, err := trans.Write(buf); err != nil {
		return 0, fmt.Errorf("parquet: thrift deserialize failed: %w", err)
	}
	proto := format.NewCompactProtocol(trans)
	if err := msg.Read(context.Background(), proto); err != nil {
		return 0, fmt.Errorf("%w: %v", parquet.ErrDeserializeFailed, err)
	}
	return len(buf) - trans.Len(), nil
}

// DeserializeEncrypted opens the single ciphertext module framed at the
// start of buf using dec under aad, then decodes msg from the recovered
// plaintext. It returns the number of bytes of buf the module consumed,
// so callers reading a stream of back-to-back modules can advance past it.
func DeserializeEncrypted(buf []byte, msg Message, dec *encryption.Decryptor, aad []byte) (consumed int, err error) {
	plain, n, err := dec.Decrypt(buf, aad)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", parquet.ErrDecryptFailed, err)
	}
	if err := Deserialize(plain, msg); err != nil {
		return 0, err
	}
	return n, nil
}
