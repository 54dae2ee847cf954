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
	"bytes"
	"fmt"
)

// HandleAadPrefix resolves the effective aad_prefix for decrypting a file,
// given what the file itself stored (fileStoredPrefix/fileHasStoredPrefix),
// what the reader's decryption properties supply (readerPrefix), the file
// algorithm's on-wire supply_aad_prefix flag, and an optional verifier. This
// is the five-case aad_prefix resolution matrix:
//
//  1. prefix in file AND in properties: must match, else AadPrefixMismatch.
//  2. prefix in file, not in properties: accept the file's prefix; if a
//     verifier is registered, it must accept the file's prefix first.
//  3. supply_aad_prefix=true and no prefix in properties: MissingAadPrefix.
//  4. prefix in properties, not in file, supply_aad_prefix=false:
//     UnexpectedAadPrefix.
//  5. verifier registered but prefix not in file: VerifierWithoutPrefix.
func HandleAadPrefix(fileStoredPrefix []byte, fileHasStoredPrefix bool, readerPrefix []byte, supplyAadPrefix bool, verifier AadPrefixVerifier) ([]byte, error) {
	if fileHasStoredPrefix {
		if len(readerPrefix) > 0 && !bytes.Equal(fileStoredPrefix, readerPrefix) {
			return nil, fmt.Errorf("%w: file prefix %q, properties prefix %q", ErrAadPrefixMismatch, fileStoredPrefix, readerPrefix)
		}
		if verifier != nil {
			if err := verifier.Verify(fileStoredPrefix); err != nil {
				return nil, fmt.Errorf("parquet: aad_prefix verification failed: %w", err)
			}
		}
		return fileStoredPrefix, nil
	}

	if verifier != nil {
		return nil, fmt.Errorf("%w", ErrVerifierWithoutPrefix)
	}
	if supplyAadPrefix {
		if len(readerPrefix) == 0 {
			return nil, fmt.Errorf("%w", ErrMissingAadPrefix)
		}
		return readerPrefix, nil
	}
	if len(readerPrefix) > 0 {
		return nil, fmt.Errorf("%w", ErrUnexpectedAadPrefix)
	}
	return nil, nil
}
