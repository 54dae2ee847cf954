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

package encryption_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
)

var testKey16 = []byte("0123456789abcdef")

func TestGcmEncryptDecryptRoundTrip(t *testing.T) {
	enc := encryption.NewEncryptor(encryption.CipherAesGcm, testKey16)
	dec := encryption.NewDecryptor(encryption.CipherAesGcm, testKey16)

	plaintext := []byte("hello parquet modular encryption")
	aad := []byte("module-aad")

	sealed, err := enc.Encrypt(plaintext, aad)
	require.NoError(t, err)

	got, n, err := dec.Decrypt(sealed, aad)
	require.NoError(t, err)
	require.Equal(t, len(sealed), n)
	require.Equal(t, plaintext, got)
}

func TestGcmDecryptFailsOnWrongAad(t *testing.T) {
	enc := encryption.NewEncryptor(encryption.CipherAesGcm, testKey16)
	dec := encryption.NewDecryptor(encryption.CipherAesGcm, testKey16)

	sealed, err := enc.Encrypt([]byte("data"), []byte("aad-a"))
	require.NoError(t, err)

	_, _, err = dec.Decrypt(sealed, []byte("aad-b"))
	require.Error(t, err)
}

func TestCtrEncryptDecryptRoundTrip(t *testing.T) {
	enc := encryption.NewEncryptor(encryption.CipherAesCtr, testKey16)
	dec := encryption.NewDecryptor(encryption.CipherAesCtr, testKey16)

	plaintext := bytes.Repeat([]byte{0x42}, 257)
	sealed, err := enc.Encrypt(plaintext, nil)
	require.NoError(t, err)

	got, _, err := dec.Decrypt(sealed, nil)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestCiphertextSizeDelta(t *testing.T) {
	gcmEnc := encryption.NewEncryptor(encryption.CipherAesGcm, testKey16)
	require.Equal(t, 4+12+16, gcmEnc.CiphertextSizeDelta())

	ctrEnc := encryption.NewEncryptor(encryption.CipherAesCtr, testKey16)
	require.Equal(t, 4+12, ctrEnc.CiphertextSizeDelta())
}

func TestSignAndVerifyFooter(t *testing.T) {
	enc := encryption.NewEncryptor(encryption.CipherAesGcm, testKey16)
	dec := encryption.NewDecryptor(encryption.CipherAesGcm, testKey16)

	footer := []byte("serialized footer bytes")
	sig, err := enc.SignFooter(footer)
	require.NoError(t, err)
	require.Len(t, sig, 28)

	require.NoError(t, dec.VerifyFooterSignature(footer, sig))
	require.Error(t, dec.VerifyFooterSignature(append(footer, 'x'), sig))
}
