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
	"fmt"
	"reflect"

	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/thriftutil"
)

// FileMetaData is the read-side wrapper around a decoded format.FileMetaData
// footer: parsed producer version, key/value metadata, and one
// RowGroupMetaData per row group. Grounded on parquet-cpp's
// FileMetaData::FileMetaDataImpl (metadata.cc).
type FileMetaData struct {
	raw           *format.FileMetaData
	writerVersion *ApplicationVersion
	rowGroups     []*RowGroupMetaData
}

// NewFileMetaData wraps an already-deserialized format.FileMetaData,
// parsing its CreatedBy string into an ApplicationVersion for the
// producer-identity statistics-correctness check.
func NewFileMetaData(raw *format.FileMetaData) *FileMetaData {
	createdBy := ""
	if raw.CreatedBy != nil {
		createdBy = *raw.CreatedBy
	}
	f := &FileMetaData{raw: raw, writerVersion: NewAppVersion(createdBy)}
	f.rowGroups = make([]*RowGroupMetaData, len(raw.RowGroups))
	for i := range raw.RowGroups {
		ordinal := int16(i)
		if raw.RowGroups[i].Ordinal != nil {
			ordinal = *raw.RowGroups[i].Ordinal
		}
		f.rowGroups[i] = NewRowGroupMetaData(&raw.RowGroups[i], ordinal, f.writerVersion)
	}
	return f
}

// DeserializeFileMetaData decodes buf (thrift-compact-protocol bytes,
// unencrypted) into a FileMetaData.
func DeserializeFileMetaData(buf []byte) (*FileMetaData, error) {
	raw := &format.FileMetaData{}
	if err := thriftutil.Deserialize(buf, raw); err != nil {
		return nil, fmt.Errorf("parquet: deserializing file metadata: %w", err)
	}
	return NewFileMetaData(raw), nil
}

// Version returns the raw footer version integer (1 or 2).
func (f *FileMetaData) Version() int32 { return f.raw.Version }

func (f *FileMetaData) NumRows() int64      { return f.raw.NumRows }
func (f *FileMetaData) NumRowGroups() int   { return len(f.rowGroups) }
func (f *FileMetaData) NumSchemaElements() int { return len(f.raw.Schema) }
func (f *FileMetaData) SchemaElements() []format.SchemaElement { return f.raw.Schema }

func (f *FileMetaData) RowGroup(i int) *RowGroupMetaData { return f.rowGroups[i] }

func (f *FileMetaData) GetCreatedBy() string {
	if f.raw.CreatedBy == nil {
		return ""
	}
	return *f.raw.CreatedBy
}

func (f *FileMetaData) WriterVersion() *ApplicationVersion { return f.writerVersion }

func (f *FileMetaData) IsEncryptionAlgorithmSet() bool { return f.raw.EncryptionAlgorithm != nil }
func (f *FileMetaData) EncryptionAlgorithm() *format.EncryptionAlgorithm {
	return f.raw.EncryptionAlgorithm
}
func (f *FileMetaData) FooterSigningKeyMetadata() []byte { return f.raw.FooterSigningKeyMetadata }

// KeyValueMetadata returns the file's key/value pairs as a map, discarding
// duplicate keys in favor of the last occurrence, matching parquet-cpp's
// KeyValueMetadata::From behavior.
func (f *FileMetaData) KeyValueMetadata() map[string]string {
	out := make(map[string]string, len(f.raw.KeyValueMetadata))
	for _, kv := range f.raw.KeyValueMetadata {
		if kv.Value != nil {
			out[kv.Key] = *kv.Value
		}
	}
	return out
}

// SerializeString returns the plaintext thrift-compact-protocol encoding
// of the underlying footer; callers needing an encrypted footer instead go
// through thriftutil.SerializeEncrypted directly with the raw struct.
func (f *FileMetaData) SerializeString() ([]byte, error) {
	return thriftutil.Serialize(f.raw)
}

// AppendRowGroups appends other's row groups to f in place, used when
// concatenating column-chunk data from multiple written files into one
// logical dataset's metadata.
func (f *FileMetaData) AppendRowGroups(other *FileMetaData) error {
	if !reflect.DeepEqual(f.raw.Schema, other.raw.Schema) {
		return fmt.Errorf("parquet: AppendRowGroups requires identical schemas")
	}
	f.raw.RowGroups = append(f.raw.RowGroups, other.raw.RowGroups...)
	f.raw.NumRows += other.raw.NumRows
	for i, rg := range other.rowGroups {
		_ = rg
		f.rowGroups = append(f.rowGroups, NewRowGroupMetaData(&f.raw.RowGroups[len(f.raw.RowGroups)-len(other.raw.RowGroups)+i], rg.Ordinal(), f.writerVersion))
	}
	return nil
}

// Subset returns a new FileMetaData containing only the given row-group
// indices, sharing the same schema and key/value metadata.
func (f *FileMetaData) Subset(rowGroupIndices []int) *FileMetaData {
	raw := &format.FileMetaData{
		Version:          f.raw.Version,
		Schema:           f.raw.Schema,
		KeyValueMetadata: f.raw.KeyValueMetadata,
		CreatedBy:        f.raw.CreatedBy,
		ColumnOrders:     f.raw.ColumnOrders,
	}
	for _, idx := range rowGroupIndices {
		raw.RowGroups = append(raw.RowGroups, f.raw.RowGroups[idx])
		raw.NumRows += f.raw.RowGroups[idx].NumRows
	}
	return NewFileMetaData(raw)
}

// Equals reports whether f and other decode to the same footer contents.
func (f *FileMetaData) Equals(other *FileMetaData) bool {
	if other == nil {
		return false
	}
	return reflect.DeepEqual(f.raw, other.raw)
}
