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

package file

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/parquetcore/parquet-core/parquet"
	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
	"github.com/parquetcore/parquet-core/parquet/internal/thriftutil"
	"github.com/parquetcore/parquet-core/parquet/metadata"
)

// MagicPlaintext and MagicEncrypted are the 4-byte markers that open and
// close every Parquet file. A file ending in MagicEncrypted has an
// encrypted footer and must be opened with FileDecryptionProperties before
// its schema is even visible; MagicPlaintext covers both the fully
// plaintext and the plaintext-footer-signed modes.
var (
	MagicPlaintext = [4]byte{'P', 'A', 'R', '1'}
	MagicEncrypted = [4]byte{'P', 'A', 'R', 'E'}
)

// FooterMode classifies how a file's footer is protected.
type FooterMode int8

const (
	FooterPlaintext FooterMode = iota
	FooterPlaintextSigned
	FooterEncrypted
)

// ClassifyMagic inspects the trailing magic bytes of a file to determine
// which footer mode was used to write it, per parquet-cpp's
// ParquetFileReader::Contents::Open magic-byte check (file_reader.cc).
func ClassifyMagic(trailingMagic [4]byte, encryptedFooter bool) (FooterMode, error) {
	switch trailingMagic {
	case MagicEncrypted:
		return FooterEncrypted, nil
	case MagicPlaintext:
		if encryptedFooter {
			return 0, fmt.Errorf("%w: file ends in plaintext magic but caller expected an encrypted footer", parquet.ErrInvalidFooter)
		}
		return FooterPlaintext, nil
	default:
		return 0, fmt.Errorf("%w: not a Parquet file (invalid magic bytes)", parquet.ErrInvalidFooter)
	}
}

// RequirePlaintextAllowed rejects an unencrypted-footer file (mode
// FooterPlaintext or FooterPlaintextSigned) when decProps is non-nil and
// didn't opt into WithPlaintextFilesAllowed. FooterEncrypted always passes:
// a caller couldn't have gotten this far without already supplying the
// decryption properties this file requires.
func RequirePlaintextAllowed(mode FooterMode, decProps *encryption.FileDecryptionProperties) error {
	if mode == FooterEncrypted || decProps == nil || decProps.PlaintextFilesAllowed() {
		return nil
	}
	return fmt.Errorf("%w", parquet.ErrPlaintextNotAllowed)
}

// WriteFooter serializes builder's FileMetaData to sink in whichever of
// the three footer modes encryptor implies (nil encryptor: plaintext;
// encryptor with EncryptedFooter() false: plaintext, GCM-signed; encryptor
// with EncryptedFooter() true: FileCryptoMetaData followed by an encrypted
// footer), followed by the 4-byte length-prefix and magic trailer every
// mode ends with. It returns the total number of bytes written.
func WriteFooter(sink io.Writer, builder *metadata.FileMetaDataBuilder, encryptor *encryption.FileEncryptor) (int64, error) {
	raw := builder.Finish()

	if encryptor == nil {
		return writePlaintextFooter(sink, raw, nil)
	}

	props := encryptor.Properties()
	if !props.EncryptedFooter() {
		return writePlaintextFooter(sink, raw, encryptor)
	}
	return writeEncryptedFooter(sink, raw, encryptor)
}

func writePlaintextFooter(sink io.Writer, raw *format.FileMetaData, encryptor *encryption.FileEncryptor) (int64, error) {
	footerBytes, err := thriftutil.Serialize(raw)
	if err != nil {
		return 0, fmt.Errorf("parquet: serializing footer: %w", err)
	}

	var total int64
	n, err := sink.Write(footerBytes)
	if err != nil {
		return 0, fmt.Errorf("parquet: writing footer: %w", err)
	}
	total += int64(n)
	footerLen := len(footerBytes)

	if encryptor != nil {
		sig, err := encryptor.FooterEncryptor().SignFooter(footerBytes)
		if err != nil {
			return 0, fmt.Errorf("parquet: signing footer: %w", err)
		}
		n, err = sink.Write(sig)
		if err != nil {
			return 0, fmt.Errorf("parquet: writing footer signature: %w", err)
		}
		total += int64(n)
		footerLen += len(sig)
	}

	n, err = writeLenAndMagic(sink, footerLen, MagicPlaintext)
	if err != nil {
		return 0, err
	}
	return total + int64(n), nil
}

func writeEncryptedFooter(sink io.Writer, raw *format.FileMetaData, encryptor *encryption.FileEncryptor) (int64, error) {
	props := encryptor.Properties()
	cryptoMeta := &format.FileCryptoMetaData{
		KeyMetadata:         props.FooterKeyMetadata(),
		EncryptionAlgorithm: encryption.BuildEncryptionAlgorithm(props),
	}

	cryptoBytes, err := thriftutil.Serialize(cryptoMeta)
	if err != nil {
		return 0, fmt.Errorf("parquet: serializing file crypto metadata: %w", err)
	}
	n, err := sink.Write(cryptoBytes)
	if err != nil {
		return 0, fmt.Errorf("parquet: writing file crypto metadata: %w", err)
	}
	total := int64(n)

	footerAad := encryption.CreateModuleAad(props.FileAad(), encryption.ModuleFooter, 0, 0, 0, false)
	sealedFooter, err := thriftutil.SerializeEncrypted(raw, encryptor.FooterEncryptor(), footerAad)
	if err != nil {
		return 0, fmt.Errorf("parquet: encrypting footer: %w", err)
	}
	n, err = sink.Write(sealedFooter)
	if err != nil {
		return 0, fmt.Errorf("parquet: writing encrypted footer: %w", err)
	}
	total += int64(n)

	nn, err := writeLenAndMagic(sink, len(cryptoBytes)+len(sealedFooter), MagicEncrypted)
	if err != nil {
		return 0, err
	}
	return total + int64(nn), nil
}

func writeLenAndMagic(sink io.Writer, footerLen int, magic [4]byte) (int, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(footerLen))
	copy(buf[4:], magic[:])
	n, err := sink.Write(buf[:])
	if err != nil {
		return 0, fmt.Errorf("parquet: writing footer length/magic trailer: %w", err)
	}
	return n, nil
}

// ReadFileMetaData decodes a plaintext footer's bytes (footer mode
// FooterPlaintext or FooterPlaintextSigned, signature already stripped by
// the caller) into a metadata.FileMetaData.
func ReadFileMetaData(footerBytes []byte) (*metadata.FileMetaData, error) {
	return metadata.DeserializeFileMetaData(footerBytes)
}

// ReadEncryptedFileMetaData decrypts an encrypted footer's bytes given the
// file-level AAD and the footer decryptor, then decodes it.
func ReadEncryptedFileMetaData(sealedFooter []byte, dec *encryption.Decryptor, fileAad []byte) (*metadata.FileMetaData, error) {
	footerAad := encryption.CreateModuleAad(fileAad, encryption.ModuleFooter, 0, 0, 0, false)
	plain, _, err := dec.Decrypt(sealedFooter, footerAad)
	if err != nil {
		return nil, fmt.Errorf("parquet: decrypting footer: %w", err)
	}
	return metadata.DeserializeFileMetaData(plain)
}

// ReadFileCryptoMetaData deserializes the unencrypted FileCryptoMetaData
// that precedes a sealed footer in encrypted-footer mode
// (FooterEncrypted), returning it along with the number of bytes it occupied
// so the caller can locate where the sealed footer begins.
func ReadFileCryptoMetaData(buf []byte) (*format.FileCryptoMetaData, int, error) {
	cryptoMeta := &format.FileCryptoMetaData{}
	n, err := thriftutil.DeserializePrefix(buf, cryptoMeta)
	if err != nil {
		return nil, 0, fmt.Errorf("parquet: deserializing file crypto metadata: %w", err)
	}
	return cryptoMeta, n, nil
}

// NewFileDecryptorForAlgorithm builds a FileDecryptor from a footer-readable
// format.EncryptionAlgorithm: the FileCryptoMetaData.EncryptionAlgorithm in
// encrypted-footer mode, or FileMetaData.EncryptionAlgorithm() in
// plaintext-footer-signed mode. Either carrier stores the same algorithm and
// aad_prefix fields a reader needs to resolve file_aad before it can decrypt
// the footer itself or any encrypted column.
func NewFileDecryptorForAlgorithm(alg *format.EncryptionAlgorithm, decProps *encryption.FileDecryptionProperties) (*encryption.FileDecryptor, error) {
	algorithm, aadPrefix, hasAadPrefix, supplyAadPrefix, aadFileUnique, err := encryption.AlgorithmFromThrift(alg)
	if err != nil {
		return nil, err
	}
	return encryption.NewFileDecryptor(decProps, algorithm, aadFileUnique, aadPrefix, hasAadPrefix, supplyAadPrefix)
}

// VerifyPlaintextFooterSignature checks a plaintext-footer-signed file's
// trailing 28-byte signature against the footer bytes that precede it.
func VerifyPlaintextFooterSignature(footerBytes, signature []byte, dec *encryption.Decryptor) error {
	return dec.VerifyFooterSignature(footerBytes, signature)
}
