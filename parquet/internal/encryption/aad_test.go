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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet/internal/encryption"
)

func TestCreateModuleAadFooter(t *testing.T) {
	fileAad := []byte("file-aad")
	aad := encryption.CreateModuleAad(fileAad, encryption.ModuleFooter, 0, 0, 0, false)
	require.Equal(t, append(append([]byte{}, fileAad...), byte(encryption.ModuleFooter)), aad)
}

func TestCreateModuleAadColumnMetadata(t *testing.T) {
	fileAad := []byte("xyz")
	aad := encryption.CreateModuleAad(fileAad, encryption.ModuleColumnMetaData, 2, 5, 0, false)
	require.Equal(t, len(fileAad)+1+2+2, len(aad))
	require.Equal(t, byte(encryption.ModuleColumnMetaData), aad[len(fileAad)])
	require.Equal(t, byte(2), aad[len(fileAad)+1])
	require.Equal(t, byte(5), aad[len(fileAad)+3])
}

func TestCreateModuleAadDataPageIncludesOrdinal(t *testing.T) {
	fileAad := []byte("xyz")
	aad := encryption.CreateModuleAad(fileAad, encryption.ModuleDataPage, 1, 1, 7, false)
	require.Equal(t, len(fileAad)+1+2+2+2, len(aad))
	require.Equal(t, byte(7), aad[len(aad)-2])
	require.Equal(t, byte(0), aad[len(aad)-1])
}

func TestQuickUpdatePageAad(t *testing.T) {
	fileAad := []byte("xyz")
	aad := encryption.CreateModuleAad(fileAad, encryption.ModuleDataPage, 0, 0, 3, false)
	encryption.QuickUpdatePageAad(aad, 9)
	require.Equal(t, byte(9), aad[len(aad)-2])

	want := encryption.CreateModuleAad(fileAad, encryption.ModuleDataPage, 0, 0, 9, false)
	require.Equal(t, want, aad)
}

func TestFileAadConcatenatesPrefixAndUnique(t *testing.T) {
	prefix := []byte("prefix-")
	unique := []byte("unique!!")
	got := encryption.FileAad(prefix, unique)
	require.Equal(t, append(append([]byte{}, prefix...), unique...), got)
}
