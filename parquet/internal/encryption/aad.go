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

// Package encryption implements Parquet Modular Encryption: the AES-GCM
// and AES-GCM-CTR cipher primitives, AAD module-type framing, and the
// file/column encryption and decryption property sets that drive them.
// Grounded on parquet-cpp's internal_file_encryptor.h/.cc (original_source/)
// and on the teacher's encryption config surface in
// other_examples/apache-arrow__encryption_write_config_test.go.
package encryption

// ModuleType identifies which part of the file a ciphertext module covers;
// in a module's AAD it follows the file AAD and precedes the ordinals.
type ModuleType byte

const (
	ModuleFooter               ModuleType = 0
	ModuleColumnMetaData       ModuleType = 1
	ModuleDataPage             ModuleType = 2
	ModuleDictionaryPage       ModuleType = 3
	ModuleDataPageHeader       ModuleType = 4
	ModuleDictionaryPageHeader ModuleType = 5
	ModuleColumnIndex          ModuleType = 6
	ModuleOffsetIndex          ModuleType = 7
	ModuleBloomFilterHeader    ModuleType = 8
	ModuleBloomFilterBitset    ModuleType = 9
)

// AadFileUniqueLen is the byte length of the random per-file AAD component
// generated at encryptor construction time.
const AadFileUniqueLen = 8

// CreateModuleAad builds the AAD for one ciphertext module: the file AAD
// (aad_prefix || aad_file_unique) followed by the module type byte and,
// for every module except the footer, the row-group/column ordinals, plus
// the page ordinal for data-page and data-page-header modules only, each
// encoded as a little-endian int16.
func CreateModuleAad(fileAad []byte, moduleType ModuleType, rowGroupOrdinal, columnOrdinal, pageOrdinal int16, isPageHeader bool) []byte {
	if moduleType == ModuleFooter {
		buf := make([]byte, 0, len(fileAad)+1)
		buf = append(buf, fileAad...)
		buf = append(buf, byte(moduleType))
		return buf
	}

	size := len(fileAad) + 1 + 2 + 2
	hasPageOrdinal := moduleType == ModuleDataPage || moduleType == ModuleDataPageHeader
	if hasPageOrdinal {
		size += 2
	}
	buf := make([]byte, 0, size)
	buf = append(buf, fileAad...)
	buf = append(buf, byte(moduleType))
	buf = appendLE16(buf, rowGroupOrdinal)
	buf = appendLE16(buf, columnOrdinal)
	if hasPageOrdinal {
		buf = appendLE16(buf, pageOrdinal)
	}
	_ = isPageHeader
	return buf
}

func appendLE16(buf []byte, v int16) []byte {
	return append(buf, byte(uint16(v)), byte(uint16(v)>>8))
}

// QuickUpdatePageAad rewrites just the trailing page-ordinal bytes of an
// AAD buffer previously produced by CreateModuleAad for a data-page/
// data-page-header module, avoiding a full AAD reconstruction for every
// page written to the same column chunk.
func QuickUpdatePageAad(aad []byte, pageOrdinal int16) {
	n := len(aad)
	aad[n-2] = byte(uint16(pageOrdinal))
	aad[n-1] = byte(uint16(pageOrdinal) >> 8)
}

// FileAad concatenates the (possibly empty) external aad_prefix with the
// per-file random aad_file_unique to form the root AAD every module's AAD
// is derived from.
func FileAad(aadPrefix, aadFileUnique []byte) []byte {
	buf := make([]byte, 0, len(aadPrefix)+len(aadFileUnique))
	buf = append(buf, aadPrefix...)
	buf = append(buf, aadFileUnique...)
	return buf
}
