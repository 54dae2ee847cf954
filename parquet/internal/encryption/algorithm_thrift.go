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

import "github.com/parquetcore/parquet-core/parquet/format"

// BuildEncryptionAlgorithm assembles the on-wire format.EncryptionAlgorithm
// for props: aad_prefix is stored in the struct only when the writer chose
// to store it in the file, otherwise supply_aad_prefix is set to tell a
// reader it must be supplied out of band. Used both for the FileCryptoMetaData
// that precedes an encrypted footer and for the EncryptionAlgorithm embedded
// directly in a plaintext, GCM-signed footer.
func BuildEncryptionAlgorithm(props *FileEncryptionProperties) format.EncryptionAlgorithm {
	var storedPrefix []byte
	var supply *bool
	if len(props.AadPrefix()) > 0 {
		if props.StoreAadPrefixInFile() {
			storedPrefix = props.AadPrefix()
		} else {
			t := true
			supply = &t
		}
	}

	alg := format.EncryptionAlgorithm{}
	switch props.Algorithm() {
	case AesGcmCtrV1:
		alg.AesGcmCtrV1 = &format.AesGcmCtrV1{AadPrefix: storedPrefix, AadFileUnique: props.AadFileUnique(), SupplyAadPrefix: supply}
	default:
		alg.AesGcmV1 = &format.AesGcmV1{AadPrefix: storedPrefix, AadFileUnique: props.AadFileUnique(), SupplyAadPrefix: supply}
	}
	return alg
}

// AlgorithmFromThrift extracts the resolved Algorithm and AAD fields from a
// decoded format.EncryptionAlgorithm union, the reader-side counterpart of
// BuildEncryptionAlgorithm.
func AlgorithmFromThrift(alg *format.EncryptionAlgorithm) (algorithm Algorithm, aadPrefix []byte, hasAadPrefix bool, supplyAadPrefix bool, aadFileUnique []byte, err error) {
	switch {
	case alg.AesGcmV1 != nil:
		a := alg.AesGcmV1
		return AesGcmV1, a.AadPrefix, len(a.AadPrefix) > 0, a.SupplyAadPrefix != nil && *a.SupplyAadPrefix, a.AadFileUnique, nil
	case alg.AesGcmCtrV1 != nil:
		a := alg.AesGcmCtrV1
		return AesGcmCtrV1, a.AadPrefix, len(a.AadPrefix) > 0, a.SupplyAadPrefix != nil && *a.SupplyAadPrefix, a.AadFileUnique, nil
	default:
		return 0, nil, false, false, nil, ErrUnsupportedAlgorithm
	}
}
