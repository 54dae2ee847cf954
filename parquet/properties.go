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

import (
	"github.com/parquetcore/parquet-core/parquet/compress"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
)

// Default tunables, matching the teacher's writer_properties.go constants.
const (
	DefaultBufSize                 = 4096
	DefaultDataPageSize             = 1024 * 1024
	DefaultDictionaryEnabled        = true
	DefaultDictionaryPageSizeLimit  = DefaultDataPageSize
	DefaultWriteBatchSize           = 1024
	DefaultMaxRowGroupLen           = 64 * 1024 * 1024
	DefaultStatsEnabled             = true
	DefaultMaxStatsSize             = 4096
	DefaultCreatedBy                = "parquet-core version 1.0.0"
	DefaultRootName                 = "schema"
	DefaultDataPageVersion          = 1
	DefaultCompressionCodec         = compress.Compression_Uncompressed
)

// ColumnProperties configures encoding, compression and statistics for one
// column (or the file-wide default). Grounded on the teacher's
// ColumnProperties in writer_properties.go/encryption_write_config_test.go.
type ColumnProperties struct {
	Encoding          Encoding
	Codec             compress.Compression
	DictionaryEnabled bool
	StatsEnabled      bool
	MaxStatsSize      int64
	CompressionLevel  int
}

func DefaultColumnProperties() ColumnProperties {
	return ColumnProperties{
		Encoding:          Encoding_Plain,
		Codec:             DefaultCompressionCodec,
		DictionaryEnabled: DefaultDictionaryEnabled,
		StatsEnabled:      DefaultStatsEnabled,
		MaxStatsSize:      DefaultMaxStatsSize,
		CompressionLevel:  compress.DefaultCompressionLevel,
	}
}

// WriterProperties is the immutable, functional-options-built
// configuration a file writer and its row-group/column-chunk writers
// consult throughout a file's lifetime.
type WriterProperties struct {
	defaultColumnProps ColumnProperties
	columnProps        map[string]ColumnProperties

	dataPageSize            int64
	dictionaryPageSizeLimit int64
	batchSize               int64
	maxRowGroupLength       int64
	dataPageVersion         int
	version                 Version
	createdBy               string
	rootName                string

	encryption *encryption.FileEncryptionProperties
}

type WriterPropertiesOption func(*WriterProperties)

func WithDataPageSize(n int64) WriterPropertiesOption {
	return func(p *WriterProperties) { p.dataPageSize = n }
}

func WithDictionaryPageSizeLimit(n int64) WriterPropertiesOption {
	return func(p *WriterProperties) { p.dictionaryPageSizeLimit = n }
}

func WithBatchSize(n int64) WriterPropertiesOption {
	return func(p *WriterProperties) { p.batchSize = n }
}

func WithMaxRowGroupLength(n int64) WriterPropertiesOption {
	return func(p *WriterProperties) { p.maxRowGroupLength = n }
}

// WithDataPageVersion selects 1 (levels+values share one compressed body)
// or 2 (levels are written uncompressed, ahead of independently
// compressed values).
func WithDataPageVersion(v int) WriterPropertiesOption {
	return func(p *WriterProperties) { p.dataPageVersion = v }
}

func WithVersion(v Version) WriterPropertiesOption {
	return func(p *WriterProperties) { p.version = v }
}

func WithCreatedByString(s string) WriterPropertiesOption {
	return func(p *WriterProperties) { p.createdBy = s }
}

func WithRootName(s string) WriterPropertiesOption {
	return func(p *WriterProperties) { p.rootName = s }
}

// WithCompression sets the default compression codec applied to every
// column that has no per-column override.
func WithCompression(c compress.Compression) WriterPropertiesOption {
	return func(p *WriterProperties) { p.defaultColumnProps.Codec = c }
}

func WithCompressionLevel(level int) WriterPropertiesOption {
	return func(p *WriterProperties) { p.defaultColumnProps.CompressionLevel = level }
}

func WithDictionaryDefault(enabled bool) WriterPropertiesOption {
	return func(p *WriterProperties) { p.defaultColumnProps.DictionaryEnabled = enabled }
}

func WithStatsDefault(enabled bool) WriterPropertiesOption {
	return func(p *WriterProperties) { p.defaultColumnProps.StatsEnabled = enabled }
}

// WithColumnProperties overrides the encoding/compression/statistics
// configuration for one column path.
func WithColumnProperties(path string, cp ColumnProperties) WriterPropertiesOption {
	return func(p *WriterProperties) {
		if p.columnProps == nil {
			p.columnProps = map[string]ColumnProperties{}
		}
		p.columnProps[path] = cp
	}
}

// WithEncryption attaches file/column encryption configuration; passing
// nil (the default) writes an unencrypted file.
func WithEncryption(props *encryption.FileEncryptionProperties) WriterPropertiesOption {
	return func(p *WriterProperties) { p.encryption = props }
}

// NewWriterProperties builds a WriterProperties starting from the
// teacher-grounded defaults above and applying opts in order.
func NewWriterProperties(opts ...WriterPropertiesOption) *WriterProperties {
	p := &WriterProperties{
		defaultColumnProps:      DefaultColumnProperties(),
		columnProps:             map[string]ColumnProperties{},
		dataPageSize:            DefaultDataPageSize,
		dictionaryPageSizeLimit: DefaultDictionaryPageSizeLimit,
		batchSize:               DefaultWriteBatchSize,
		maxRowGroupLength:       DefaultMaxRowGroupLen,
		dataPageVersion:         DefaultDataPageVersion,
		version:                 V1_0,
		createdBy:               DefaultCreatedBy,
		rootName:                DefaultRootName,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *WriterProperties) ColumnProperties(path string) ColumnProperties {
	if cp, ok := p.columnProps[path]; ok {
		return cp
	}
	return p.defaultColumnProps
}

func (p *WriterProperties) DataPageSize() int64            { return p.dataPageSize }
func (p *WriterProperties) DictionaryPageSizeLimit() int64 { return p.dictionaryPageSizeLimit }
func (p *WriterProperties) WriteBatchSize() int64          { return p.batchSize }
func (p *WriterProperties) MaxRowGroupLength() int64       { return p.maxRowGroupLength }
func (p *WriterProperties) DataPageVersion() int           { return p.dataPageVersion }
func (p *WriterProperties) Version() Version               { return p.version }
func (p *WriterProperties) CreatedBy() string               { return p.createdBy }
func (p *WriterProperties) RootName() string                { return p.rootName }
func (p *WriterProperties) Encryption() *encryption.FileEncryptionProperties { return p.encryption }

// ReaderProperties configures how a file is read back: I/O buffering and,
// for encrypted files, the decryption configuration.
type ReaderProperties struct {
	bufferSize int64
	decryption *encryption.FileDecryptionProperties
}

type ReaderPropertiesOption func(*ReaderProperties)

func WithReaderBufferSize(n int64) ReaderPropertiesOption {
	return func(p *ReaderProperties) { p.bufferSize = n }
}

func WithDecryption(props *encryption.FileDecryptionProperties) ReaderPropertiesOption {
	return func(p *ReaderProperties) { p.decryption = props }
}

func NewReaderProperties(opts ...ReaderPropertiesOption) *ReaderProperties {
	p := &ReaderProperties{bufferSize: DefaultBufSize}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *ReaderProperties) BufferSize() int64 { return p.bufferSize }
func (p *ReaderProperties) Decryption() *encryption.FileDecryptionProperties { return p.decryption }
