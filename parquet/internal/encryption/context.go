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

import "fmt"

// bodyCipher returns the cipher used for bulk page bodies under alg: CTR
// under AesGcmCtrV1, GCM everywhere else (including every module under
// AesGcmV1).
func bodyCipher(alg Algorithm) Cipher {
	if alg == AesGcmCtrV1 {
		return CipherAesCtr
	}
	return CipherAesGcm
}

// FileEncryptor owns the per-file encryption state a writer needs: the
// footer encryptor/signer and a lazily-built cache of per-column
// encryptors, one pair (metadata cipher, data cipher) per encrypted
// column. Grounded on parquet-cpp's InternalFileEncryptor.
type FileEncryptor struct {
	props        *FileEncryptionProperties
	footerSigner *Encryptor
	metaCache    map[string]*Encryptor
	dataCache    map[string]*Encryptor
}

func NewFileEncryptor(props *FileEncryptionProperties) *FileEncryptor {
	return &FileEncryptor{
		props:     props,
		metaCache: map[string]*Encryptor{},
		dataCache: map[string]*Encryptor{},
	}
}

func (e *FileEncryptor) Properties() *FileEncryptionProperties { return e.props }

// FooterEncryptor returns the encryptor for the footer/signature module:
// always GCM, keyed by the footer key.
func (e *FileEncryptor) FooterEncryptor() *Encryptor {
	if e.footerSigner == nil {
		e.footerSigner = NewEncryptor(CipherAesGcm, e.props.FooterKey())
	}
	return e.footerSigner
}

func (e *FileEncryptor) columnKey(path string) []byte {
	if cp := e.props.ColumnProperties(path); cp != nil && len(cp.Key()) > 0 {
		return cp.Key()
	}
	return e.props.FooterKey()
}

// MetadataEncryptor returns the (always GCM) encryptor for a column's
// headers/dictionary-page-header/column-metadata modules.
func (e *FileEncryptor) MetadataEncryptor(path string) *Encryptor {
	if enc, ok := e.metaCache[path]; ok {
		return enc
	}
	enc := NewEncryptor(CipherAesGcm, e.columnKey(path))
	e.metaCache[path] = enc
	return enc
}

// DataEncryptor returns the encryptor for a column's page bodies: CTR
// under AesGcmCtrV1, GCM under AesGcmV1.
func (e *FileEncryptor) DataEncryptor(path string) *Encryptor {
	if enc, ok := e.dataCache[path]; ok {
		return enc
	}
	enc := NewEncryptor(bodyCipher(e.props.Algorithm()), e.columnKey(path))
	e.dataCache[path] = enc
	return enc
}

// IsColumnEncrypted reports whether path has an explicit encryption
// override; encrypted-footer files implicitly encrypt every column with
// the footer key even without one.
func (e *FileEncryptor) IsColumnEncrypted(path string) bool {
	if cp := e.props.ColumnProperties(path); cp != nil {
		return cp.IsEncrypted()
	}
	return e.props.EncryptedFooter()
}

// WipeOutEncryptionKeys releases key material once the file is fully
// written.
func (e *FileEncryptor) WipeOutEncryptionKeys() { e.props.WipeOutEncryptionKeys() }

// FileDecryptor is the reader-side counterpart of FileEncryptor: resolved
// algorithm/aad_prefix plus a lazily-built cache of per-column decryptors.
type FileDecryptor struct {
	props         *FileDecryptionProperties
	algorithm     Algorithm
	fileAad       []byte
	footerDecrypt *Decryptor
	metaCache     map[string]*Decryptor
	dataCache     map[string]*Decryptor
}

// NewFileDecryptor resolves aad_prefix via HandleAadPrefix and builds the
// footer decryptor eagerly, matching parquet-cpp's
// InternalFileDecryptor::SetFileCryptoMetaData. supplyAadPrefix is the
// algorithm's on-wire supply_aad_prefix flag (format.AesGcmV1/AesGcmCtrV1's
// SupplyAadPrefix field), read back from the file's stored
// EncryptionAlgorithm/FileCryptoMetaData.
func NewFileDecryptor(props *FileDecryptionProperties, alg Algorithm, aadFileUnique []byte, fileStoredPrefix []byte, fileHasStoredPrefix, supplyAadPrefix bool) (*FileDecryptor, error) {
	if props == nil {
		return nil, fmt.Errorf("parquet: decrypting an encrypted file requires FileDecryptionProperties")
	}
	if len(props.FooterKey()) == 0 {
		return nil, fmt.Errorf("parquet: %w", ErrMissingFooterKey)
	}
	prefix, err := HandleAadPrefix(fileStoredPrefix, fileHasStoredPrefix, props.AadPrefix(), supplyAadPrefix, props.Verifier())
	if err != nil {
		return nil, err
	}
	d := &FileDecryptor{
		props:     props,
		algorithm: alg,
		fileAad:   FileAad(prefix, aadFileUnique),
		metaCache: map[string]*Decryptor{},
		dataCache: map[string]*Decryptor{},
	}
	d.footerDecrypt = NewDecryptor(CipherAesGcm, props.FooterKey())
	return d, nil
}

func (d *FileDecryptor) FileAad() []byte           { return d.fileAad }
func (d *FileDecryptor) FooterDecryptor() *Decryptor { return d.footerDecrypt }

func (d *FileDecryptor) columnKey(path string) ([]byte, error) {
	if cp := d.props.ColumnProperties(path); cp != nil && len(cp.Key()) > 0 {
		return cp.Key(), nil
	}
	if len(d.props.FooterKey()) == 0 {
		return nil, fmt.Errorf("%w: column %q", ErrMissingColumnKey, path)
	}
	return d.props.FooterKey(), nil
}

func (d *FileDecryptor) MetadataDecryptor(path string) (*Decryptor, error) {
	if dec, ok := d.metaCache[path]; ok {
		return dec, nil
	}
	key, err := d.columnKey(path)
	if err != nil {
		return nil, err
	}
	dec := NewDecryptor(CipherAesGcm, key)
	d.metaCache[path] = dec
	return dec, nil
}

func (d *FileDecryptor) DataDecryptor(path string) (*Decryptor, error) {
	if dec, ok := d.dataCache[path]; ok {
		return dec, nil
	}
	key, err := d.columnKey(path)
	if err != nil {
		return nil, err
	}
	dec := NewDecryptor(bodyCipher(d.algorithm), key)
	d.dataCache[path] = dec
	return dec, nil
}

func (d *FileDecryptor) WipeOutDecryptionKeys() { d.props.WipeOutDecryptionKeys() }
