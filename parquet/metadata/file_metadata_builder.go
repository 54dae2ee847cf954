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
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

// FileMetaDataBuilder accumulates a file's row groups across the file
// writer's lifetime, then produces the final format.FileMetaData to be
// serialized (and, for an encrypted-footer file, encrypted) into the
// footer. Grounded on parquet-cpp's FileMetaDataBuilder (metadata.cc).
type FileMetaDataBuilder struct {
	schema    *schema.Schema
	version   int32
	createdBy string
	encryptor *encryption.FileEncryptor
	rowGroups []*format.RowGroup
	numRows   int64
	kv        []format.KeyValue
	current   *RowGroupMetaDataBuilder
}

type FileMetaDataBuilderOption func(*FileMetaDataBuilder)

func WithCreatedBy(s string) FileMetaDataBuilderOption {
	return func(b *FileMetaDataBuilder) { b.createdBy = s }
}

func WithFormatVersion(v int32) FileMetaDataBuilderOption {
	return func(b *FileMetaDataBuilder) { b.version = v }
}

func WithFileEncryptor(e *encryption.FileEncryptor) FileMetaDataBuilderOption {
	return func(b *FileMetaDataBuilder) { b.encryptor = e }
}

func NewFileMetadataBuilder(sc *schema.Schema, opts ...FileMetaDataBuilderOption) *FileMetaDataBuilder {
	b := &FileMetaDataBuilder{schema: sc, version: 1}
	for _, o := range opts {
		o(b)
	}
	return b
}

// AppendRowGroup starts a new row group builder at ordinal
// len(existing row groups), returning it for the column writers to fill in.
func (b *FileMetaDataBuilder) AppendRowGroup() *RowGroupMetaDataBuilder {
	ordinal := int16(len(b.rowGroups))
	b.current = NewRowGroupMetaDataBuilder(b.schema, ordinal, b.encryptor)
	return b.current
}

// FinishRowGroup finalizes the current row group builder (previously
// returned by AppendRowGroup) and folds it into the file.
func (b *FileMetaDataBuilder) FinishRowGroup(totalByteSize, totalCompressedSize, fileOffset int64) error {
	rg, err := b.current.Finish(totalByteSize, totalCompressedSize, fileOffset)
	if err != nil {
		return err
	}
	b.rowGroups = append(b.rowGroups, rg)
	b.numRows += rg.NumRows
	b.current = nil
	return nil
}

func (b *FileMetaDataBuilder) AddKeyValueMetadata(key, value string) {
	v := value
	b.kv = append(b.kv, format.KeyValue{Key: key, Value: &v})
}

// Finish assembles the complete footer: flattened schema, row groups,
// key/value metadata and (for a plaintext-footer encrypted file) the
// encryption algorithm descriptor and footer signing key metadata.
func (b *FileMetaDataBuilder) Finish() *format.FileMetaData {
	raw := &format.FileMetaData{
		Version:          b.version,
		Schema:           b.schema.SchemaElements(),
		NumRows:          b.numRows,
		RowGroups:        derefRowGroups(b.rowGroups),
		KeyValueMetadata: b.kv,
	}
	if b.createdBy != "" {
		createdBy := b.createdBy
		raw.CreatedBy = &createdBy
	}

	// The encryption_algorithm/footer_signing_key_metadata fields belong in
	// the footer itself only in plaintext-footer-signed mode, where a reader
	// can see them without decrypting anything; in encrypted-footer mode the
	// same information instead lives in the external FileCryptoMetaData that
	// precedes the sealed footer (see file.writeEncryptedFooter), since
	// nothing inside the footer is readable before that decryption happens.
	if b.encryptor != nil && !b.encryptor.Properties().EncryptedFooter() {
		props := b.encryptor.Properties()
		alg := encryption.BuildEncryptionAlgorithm(props)
		raw.EncryptionAlgorithm = &alg
		raw.FooterSigningKeyMetadata = props.FooterKeyMetadata()
	}

	return raw
}

func derefRowGroups(rgs []*format.RowGroup) []format.RowGroup {
	out := make([]format.RowGroup, len(rgs))
	for i, rg := range rgs {
		out[i] = *rg
	}
	return out
}
