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
	"golang.org/x/xerrors"

	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
)

// Sentinel errors a caller can match against with errors.Is, matching the
// teacher's practice of exporting a fixed set of xerrors.New sentinels for
// conditions callers are expected to branch on rather than just log.
//
// The Err*AadPrefix*, ErrVerifierWithoutPrefix, ErrMissingColumnKey,
// ErrMissingFooterKey, ErrInvalidSignatureLen, ErrUnsupportedAlgorithm and
// ErrPlaintextNotAllowed values are re-exports of the identical sentinels
// internal/encryption already produces its failures with, rather than
// independently declared values of the same name: that keeps
// errors.Is(err, parquet.ErrMissingColumnKey) matching what the encryption
// package actually returns instead of a look-alike that never compares equal.
var (
	ErrNotYetImplemented = xerrors.New("parquet: feature not yet implemented")
	ErrEOF               = xerrors.New("parquet: eof exception")
	ErrOutOfMemory       = xerrors.New("parquet: out of memory exception")

	// ErrDeserializeFailed and ErrDecryptFailed classify a corrupted or
	// tampered footer/page header, distinguished so a caller can tell a
	// wire-format bug from an authentication failure.
	ErrDeserializeFailed = xerrors.New("parquet: could not deserialize thrift message")
	ErrDecryptFailed     = xerrors.New("parquet: could not decrypt thrift message")

	// ErrInvalidFooter means the trailing magic bytes were not a
	// recognized Parquet footer marker, or the marker didn't match the
	// footer mode the caller expected (e.g. an unencrypted-open against a
	// PARE-terminated file).
	ErrInvalidFooter = xerrors.New("parquet: invalid or unexpected footer magic")

	// ErrMissingColumnKey means a decryptor was never given the key an
	// explicitly column-keyed chunk was encrypted with.
	ErrMissingColumnKey = encryption.ErrMissingColumnKey

	// ErrMissingFooterKey means FileDecryptionProperties carried no footer
	// key for a file that requires one to open at all.
	ErrMissingFooterKey = encryption.ErrMissingFooterKey

	// ErrAadPrefixMismatch means a caller-supplied aad_prefix conflicts
	// with the file's own stored one (a verifier's rejection is reported
	// with the verifier's own error instead).
	ErrAadPrefixMismatch = encryption.ErrAadPrefixMismatch

	// ErrMissingAadPrefix means the file's algorithm declares
	// supply_aad_prefix=true but FileDecryptionProperties supplied none.
	ErrMissingAadPrefix = encryption.ErrMissingAadPrefix

	// ErrUnexpectedAadPrefix means FileDecryptionProperties supplied an
	// aad_prefix the file neither stores nor expects out of band.
	ErrUnexpectedAadPrefix = encryption.ErrUnexpectedAadPrefix

	// ErrVerifierWithoutPrefix means an AadPrefixVerifier was registered
	// but the file stores no aad_prefix for it to verify.
	ErrVerifierWithoutPrefix = encryption.ErrVerifierWithoutPrefix

	// ErrInvalidSignatureLen means a plaintext-footer-signed file's
	// trailing signature was not the expected nonce+tag length.
	ErrInvalidSignatureLen = encryption.ErrInvalidSignatureLen

	// ErrUnsupportedAlgorithm means a decoded EncryptionAlgorithm union set
	// neither of the two known variants (AesGcmV1, AesGcmCtrV1).
	ErrUnsupportedAlgorithm = encryption.ErrUnsupportedAlgorithm

	// ErrPlaintextNotAllowed means a reader configured to require
	// encryption was opened against a file with no encryption at all.
	ErrPlaintextNotAllowed = encryption.ErrPlaintextNotAllowed

	// ErrBuilderMisuse means a metadata builder was driven out of its
	// expected sequence, e.g. finishing a row group before every column
	// chunk in its schema was written.
	ErrBuilderMisuse = xerrors.New("parquet: builder used out of sequence")

	// ErrInvalidFileOffset is returned by builders/writers that detect a
	// row group or column chunk finished out of the expected order.
	ErrInvalidFileOffset = xerrors.New("parquet: invalid file offset")

	// ErrInvalidColumnIndex is returned when a schema index request is out
	// of range for the current schema.
	ErrInvalidColumnIndex = xerrors.New("parquet: invalid column index")
)
