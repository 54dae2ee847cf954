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

package compress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet/compress"
)

func TestRoundTripAllCodecs(t *testing.T) {
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)

	codecs := []compress.Compression{
		compress.Codecs.Uncompressed,
		compress.Codecs.Snappy,
		compress.Codecs.Gzip,
		compress.Codecs.Brotli,
		compress.Codecs.LZ4Raw,
		compress.Codecs.Zstd,
	}
	for _, c := range codecs {
		c := c
		t.Run(c.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(c, compress.DefaultCompressionLevel)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil, payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(nil, compressed, len(payload))
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestGetCodecUnsupported(t *testing.T) {
	_, err := compress.GetCodec(compress.Compression(99), compress.DefaultCompressionLevel)
	require.Error(t, err)
}
