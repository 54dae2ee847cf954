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

package thriftutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/internal/thriftutil"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	createdBy := "parquet-core test"
	msg := &format.FileMetaData{
		Version:   1,
		NumRows:   42,
		CreatedBy: &createdBy,
		Schema: []format.SchemaElement{
			{Name: "schema"},
		},
	}
	buf, err := thriftutil.Serialize(msg)
	require.NoError(t, err)

	got := &format.FileMetaData{}
	require.NoError(t, thriftutil.Deserialize(buf, got))
	require.Equal(t, msg.NumRows, got.NumRows)
	require.Equal(t, *msg.CreatedBy, *got.CreatedBy)
}

func TestSerializeEncryptedDeserializeEncryptedRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef")
	enc := encryption.NewEncryptor(encryption.CipherAesGcm, key)
	dec := encryption.NewDecryptor(encryption.CipherAesGcm, key)
	aad := []byte("module-aad")

	numValues := int32(7)
	dph := &format.DictionaryPageHeader{NumValues: numValues, Encoding: format.Encoding_PLAIN}

	sealed, err := thriftutil.SerializeEncrypted(dph, enc, aad)
	require.NoError(t, err)

	got := &format.DictionaryPageHeader{}
	n, err := thriftutil.DeserializeEncrypted(sealed, got, dec, aad)
	require.NoError(t, err)
	require.Equal(t, len(sealed), n)
	require.Equal(t, numValues, got.NumValues)
}

func TestDeserializeEncryptedFailsOnTamperedAad(t *testing.T) {
	key := []byte("0123456789abcdef")
	enc := encryption.NewEncryptor(encryption.CipherAesGcm, key)
	dec := encryption.NewDecryptor(encryption.CipherAesGcm, key)

	msg := &format.DictionaryPageHeader{NumValues: 1, Encoding: format.Encoding_PLAIN}
	sealed, err := thriftutil.SerializeEncrypted(msg, enc, []byte("aad-a"))
	require.NoError(t, err)

	got := &format.DictionaryPageHeader{}
	_, err = thriftutil.DeserializeEncrypted(sealed, got, dec, []byte("aad-b"))
	require.Error(t, err)
	require.ErrorIs(t, err, parquet.ErrDecryptFailed)
}

func TestDeserializeFailsOnGarbageBytes(t *testing.T) {
	got := &format.FileMetaData{}
	err := thriftutil.Deserialize([]byte{0xff, 0xff, 0xff, 0xff, 0xff}, got)
	require.Error(t, err)
	require.ErrorIs(t, err, parquet.ErrDeserializeFailed)
}
