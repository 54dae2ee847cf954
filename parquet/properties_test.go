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

package parquet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet"
	"github.com/parquetcore/parquet-core/parquet/compress"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
)

func TestNewWriterPropertiesDefaults(t *testing.T) {
	p := parquet.NewWriterProperties()
	require.EqualValues(t, parquet.DefaultDataPageSize, p.DataPageSize())
	require.EqualValues(t, parquet.DefaultWriteBatchSize, p.WriteBatchSize())
	require.Equal(t, parquet.V1_0, p.Version())
	require.Equal(t, parquet.DefaultCreatedBy, p.CreatedBy())
	require.Nil(t, p.Encryption())

	cp := p.ColumnProperties("anything")
	require.Equal(t, compress.Codecs.Uncompressed, cp.Codec)
	require.True(t, cp.DictionaryEnabled)
	require.True(t, cp.StatsEnabled)
}

func TestWriterPropertiesPerColumnOverride(t *testing.T) {
	override := parquet.DefaultColumnProperties()
	override.Codec = compress.Codecs.Zstd
	override.DictionaryEnabled = false

	p := parquet.NewWriterProperties(
		parquet.WithCompression(compress.Codecs.Snappy),
		parquet.WithColumnProperties("a.b", override),
	)

	require.Equal(t, compress.Codecs.Snappy, p.ColumnProperties("other").Codec)
	require.Equal(t, compress.Codecs.Zstd, p.ColumnProperties("a.b").Codec)
	require.False(t, p.ColumnProperties("a.b").DictionaryEnabled)
}

func TestWriterPropertiesWithEncryption(t *testing.T) {
	props, err := encryption.NewFileEncryptionProperties([]byte("0123456789abcdef"))
	require.NoError(t, err)

	p := parquet.NewWriterProperties(parquet.WithEncryption(props))
	require.NotNil(t, p.Encryption())
	require.True(t, p.Encryption().EncryptedFooter())
}

func TestNewReaderPropertiesDefaults(t *testing.T) {
	p := parquet.NewReaderProperties()
	require.EqualValues(t, parquet.DefaultBufSize, p.BufferSize())
	require.Nil(t, p.Decryption())
}

func TestReaderPropertiesWithDecryption(t *testing.T) {
	dp := encryption.NewFileDecryptionProperties([]byte("0123456789abcdef"))
	p := parquet.NewReaderProperties(parquet.WithDecryption(dp))
	require.NotNil(t, p.Decryption())
}
