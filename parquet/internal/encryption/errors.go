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

package encryption

import "golang.org/x/xerrors"

// Sentinel errors checkable with errors.Is. These are the canonical values:
// the root parquet package re-exports each one rather than declaring its own,
// so a caller matching against parquet.ErrMissingColumnKey (for example)
// matches the exact error this package produces.
var (
	// ErrMissingColumnKey means a decryptor was never given the key an
	// explicitly column-keyed chunk was encrypted with.
	ErrMissingColumnKey = xerrors.New("parquet: missing column decryption key")

	// ErrMissingFooterKey means a decryptor was never given the key an
	// encrypted-footer or footer-signed file requires.
	ErrMissingFooterKey = xerrors.New("parquet: missing footer decryption key")

	// ErrAadPrefixMismatch means a caller-supplied aad_prefix conflicts
	// with the file's own stored one.
	ErrAadPrefixMismatch = xerrors.New("parquet: aad_prefix mismatch")

	// ErrMissingAadPrefix means the file's algorithm declares
	// supply_aad_prefix=true but the reader's properties carry no prefix.
	ErrMissingAadPrefix = xerrors.New("parquet: aad_prefix required but not supplied")

	// ErrUnexpectedAadPrefix means the reader supplied an aad_prefix for a
	// file that neither stores one nor declares supply_aad_prefix=true.
	ErrUnexpectedAadPrefix = xerrors.New("parquet: aad_prefix supplied but file does not expect one")

	// ErrVerifierWithoutPrefix means an AadPrefixVerifier was registered
	// but the file stores no aad_prefix for it to verify.
	ErrVerifierWithoutPrefix = xerrors.New("parquet: aad_prefix verifier registered but file stores no aad_prefix")

	// ErrInvalidSignatureLen means a plaintext-footer signature was not
	// exactly 28 bytes (12-byte nonce + 16-byte tag).
	ErrInvalidSignatureLen = xerrors.New("parquet: invalid plaintext footer signature length")

	// ErrUnsupportedAlgorithm means a FileCryptoMetaData/EncryptionAlgorithm
	// union carried neither AesGcmV1 nor AesGcmCtrV1.
	ErrUnsupportedAlgorithm = xerrors.New("parquet: unsupported encryption algorithm")

	// ErrPlaintextNotAllowed means decryption properties rejected an
	// unencrypted file (WithPlaintextFilesAllowed was not set).
	ErrPlaintextNotAllowed = xerrors.New("parquet: plaintext file rejected by decryption properties")
)
