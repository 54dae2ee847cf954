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

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// Algorithm selects the file-wide cipher variant carried in
// format.EncryptionAlgorithm.
type Algorithm int8

const (
	AesGcmV1 Algorithm = iota
	AesGcmCtrV1
)

// ColumnEncryptionProperties configures encryption for one column: its own
// key and key metadata, or (when Key is nil) inheritance of the footer key.
type ColumnEncryptionProperties struct {
	path        string
	encrypted   bool
	key         []byte
	keyMetadata []byte
}

type ColumnEncryptionOption func(*ColumnEncryptionProperties)

// WithColumnKey sets a per-column data encryption key distinct from the
// footer key.
func WithColumnKey(key []byte) ColumnEncryptionOption {
	return func(c *ColumnEncryptionProperties) { c.key = key }
}

// WithColumnKeyMetadata attaches opaque key-retrieval metadata for the
// column's key.
func WithColumnKeyMetadata(meta []byte) ColumnEncryptionOption {
	return func(c *ColumnEncryptionProperties) { c.keyMetadata = meta }
}

func NewColumnEncryptionProperties(path string, opts ...ColumnEncryptionOption) *ColumnEncryptionProperties {
	c := &ColumnEncryptionProperties{path: path, encrypted: true}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *ColumnEncryptionProperties) Path() string        { return c.path }
func (c *ColumnEncryptionProperties) IsEncrypted() bool   { return c.encrypted }
func (c *ColumnEncryptionProperties) IsEncryptedWithFooterKey() bool {
	return c.encrypted && len(c.key) == 0
}
func (c *ColumnEncryptionProperties) Key() []byte         { return c.key }
func (c *ColumnEncryptionProperties) KeyMetadata() []byte { return c.keyMetadata }

// WipeOutEncryptionKeys zeroes the column key material in place, called
// once a writer has finished encrypting with it.
func (c *ColumnEncryptionProperties) WipeOutEncryptionKeys() {
	zero(c.key)
}

// FileEncryptionProperties is the top-level encryption configuration for a
// file being written: footer key/algorithm, per-column overrides, and the
// aad_prefix handshake settings. Grounded on parquet-cpp's
// FileEncryptionProperties::Builder (internal_file_encryptor.h) and on the
// teacher's functional-options config surface.
type FileEncryptionProperties struct {
	algorithm            Algorithm
	footerKey            []byte
	footerKeyMetadata    []byte
	encryptedFooter      bool
	columns              map[string]*ColumnEncryptionProperties
	aadPrefix            []byte
	storeAadPrefixInFile bool
	aadFileUnique        []byte
}

type FileEncryptionOption func(*FileEncryptionProperties)

func WithAlg(a Algorithm) FileEncryptionOption {
	return func(f *FileEncryptionProperties) { f.algorithm = a }
}

func WithFooterKeyMetadata(meta []byte) FileEncryptionOption {
	return func(f *FileEncryptionProperties) { f.footerKeyMetadata = meta }
}

// WithPlaintextFooter disables footer encryption: the footer is written in
// the clear but signed with the footer key so it can still be authenticated.
func WithPlaintextFooter() FileEncryptionOption {
	return func(f *FileEncryptionProperties) { f.encryptedFooter = false }
}

func WithEncryptedColumns(cols map[string]*ColumnEncryptionProperties) FileEncryptionOption {
	return func(f *FileEncryptionProperties) { f.columns = cols }
}

func WithAadPrefix(prefix []byte) FileEncryptionOption {
	return func(f *FileEncryptionProperties) { f.aadPrefix = prefix }
}

// DisableAadPrefixStorage keeps the aad_prefix out of the file itself; a
// reader must then supply it out of band via
// FileDecryptionProperties.AadPrefix (WithDecryptionAadPrefix).
func DisableAadPrefixStorage() FileEncryptionOption {
	return func(f *FileEncryptionProperties) { f.storeAadPrefixInFile = false }
}

// NewFileEncryptionProperties builds a FileEncryptionProperties with a
// freshly generated random aad_file_unique, footer-key encryption enabled
// by default, and aad_prefix storage on by default.
func NewFileEncryptionProperties(footerKey []byte, opts ...FileEncryptionOption) (*FileEncryptionProperties, error) {
	if len(footerKey) == 0 {
		return nil, fmt.Errorf("parquet: footer encryption key must not be empty")
	}
	unique := make([]byte, AadFileUniqueLen)
	if _, err := rand.Read(unique); err != nil {
		return nil, fmt.Errorf("parquet: generating aad_file_unique: %w", err)
	}
	f := &FileEncryptionProperties{
		footerKey:            footerKey,
		encryptedFooter:      true,
		storeAadPrefixInFile: true,
		aadFileUnique:        unique,
		columns:              map[string]*ColumnEncryptionProperties{},
	}
	for _, o := range opts {
		o(f)
	}
	return f, nil
}

func (f *FileEncryptionProperties) Algorithm() Algorithm          { return f.algorithm }
func (f *FileEncryptionProperties) FooterKey() []byte             { return f.footerKey }
func (f *FileEncryptionProperties) FooterKeyMetadata() []byte     { return f.footerKeyMetadata }
func (f *FileEncryptionProperties) EncryptedFooter() bool         { return f.encryptedFooter }
func (f *FileEncryptionProperties) AadPrefix() []byte             { return f.aadPrefix }
func (f *FileEncryptionProperties) StoreAadPrefixInFile() bool    { return f.storeAadPrefixInFile }
func (f *FileEncryptionProperties) AadFileUnique() []byte         { return f.aadFileUnique }
func (f *FileEncryptionProperties) FileAad() []byte               { return FileAad(f.aadPrefix, f.aadFileUnique) }

// ColumnProperties returns the per-column override for path, or nil if the
// column inherits footer-key encryption implicitly.
func (f *FileEncryptionProperties) ColumnProperties(path string) *ColumnEncryptionProperties {
	return f.columns[path]
}

// WipeOutEncryptionKeys zeroes the footer key and every column key.
func (f *FileEncryptionProperties) WipeOutEncryptionKeys() {
	zero(f.footerKey)
	for _, c := range f.columns {
		c.WipeOutEncryptionKeys()
	}
}

// ColumnDecryptionProperties supplies the key material needed to decrypt
// one explicitly-keyed column.
type ColumnDecryptionProperties struct {
	path string
	key  []byte
}

func NewColumnDecryptionProperties(path string, key []byte) *ColumnDecryptionProperties {
	return &ColumnDecryptionProperties{path: path, key: key}
}

func (c *ColumnDecryptionProperties) Path() string { return c.path }
func (c *ColumnDecryptionProperties) Key() []byte  { return c.key }
func (c *ColumnDecryptionProperties) WipeOutDecryptionKey() { zero(c.key) }

// AadPrefixVerifier lets a reader confirm that a file's stored aad_prefix
// matches the reader's expectation before any decryption is attempted;
// HandleAadPrefix calls it only on a prefix stored in the file.
type AadPrefixVerifier interface {
	Verify(aadPrefix []byte) error
}

// FileDecryptionProperties is the top-level decryption configuration for a
// file being read.
type FileDecryptionProperties struct {
	footerKey       []byte
	columns         map[string]*ColumnDecryptionProperties
	aadPrefix       []byte
	verifier        AadPrefixVerifier
	plaintextAllowed bool
}

type FileDecryptionOption func(*FileDecryptionProperties)

func WithColumnKeys(cols map[string]*ColumnDecryptionProperties) FileDecryptionOption {
	return func(f *FileDecryptionProperties) { f.columns = cols }
}

func WithDecryptionAadPrefix(prefix []byte) FileDecryptionOption {
	return func(f *FileDecryptionProperties) { f.aadPrefix = prefix }
}

func WithAadPrefixVerifier(v AadPrefixVerifier) FileDecryptionOption {
	return func(f *FileDecryptionProperties) { f.verifier = v }
}

// WithPlaintextFilesAllowed permits opening files that are not encrypted
// at all through an otherwise-configured decryptor.
func WithPlaintextFilesAllowed() FileDecryptionOption {
	return func(f *FileDecryptionProperties) { f.plaintextAllowed = true }
}

func NewFileDecryptionProperties(footerKey []byte, opts ...FileDecryptionOption) *FileDecryptionProperties {
	f := &FileDecryptionProperties{footerKey: footerKey, columns: map[string]*ColumnDecryptionProperties{}}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *FileDecryptionProperties) FooterKey() []byte     { return f.footerKey }
func (f *FileDecryptionProperties) AadPrefix() []byte     { return f.aadPrefix }
func (f *FileDecryptionProperties) Verifier() AadPrefixVerifier { return f.verifier }
func (f *FileDecryptionProperties) PlaintextFilesAllowed() bool { return f.plaintextAllowed }
func (f *FileDecryptionProperties) ColumnProperties(path string) *ColumnDecryptionProperties {
	return f.columns[path]
}

func (f *FileDecryptionProperties) WipeOutDecryptionKeys() {
	zero(f.footerKey)
	for _, c := range f.columns {
		c.WipeOutDecryptionKey()
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NewAadFileUnique returns a fresh random uuid as a string.
// NewFileEncryptionProperties does not use it: its aad_file_unique is
// AadFileUniqueLen bytes read from crypto/rand.
func NewAadFileUnique() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("parquet: generating file unique id: %w", err)
	}
	return id.String(), nil
}
