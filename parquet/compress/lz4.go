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

package compress

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec implements Parquet's LZ4_RAW codec: a bare LZ4 block, no frame
// header, matching the format modern readers expect (the older LZ4_HADOOP
// codec is a legacy compatibility shim THE CORE does not need to write).
type lz4Codec struct{}

func (lz4Codec) Compress(dst, src []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(src)))
	var c lz4.Compressor
	n, err := c.CompressBlock(src, buf)
	if err != nil {
		return nil, fmt.Errorf("parquet: lz4 compress: %w", err)
	}
	return append(dst[:0], buf[:n]...), nil
}

func (lz4Codec) Decompress(dst, src []byte, uncompressedSize int) ([]byte, error) {
	if uncompressedSize <= 0 {
		return nil, fmt.Errorf("parquet: lz4 decompress requires known uncompressed size")
	}
	out := dst
	if cap(out) < uncompressedSize {
		out = make([]byte, uncompressedSize)
	} else {
		out = out[:uncompressedSize]
	}
	n, err := lz4.UncompressBlock(src, out)
	if err != nil {
		return nil, fmt.Errorf("parquet: lz4 decompress: %w", err)
	}
	return out[:n], nil
}

func (lz4Codec) CompressBound(n int) int { return lz4.CompressBlockBound(n) }
