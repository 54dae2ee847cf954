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

	"github.com/klauspost/compress/zstd"
)

// zstdCodec lazily builds its encoder/decoder pair on first use and reuses
// them; zstd's encoder/decoder setup is comparatively expensive and the
// library's own docs recommend holding on to one across calls.
type zstdCodec struct {
	level zstd.EncoderLevel
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

func newZstdCodec(level int) *zstdCodec {
	lvl := zstd.SpeedDefault
	if level != DefaultCompressionLevel {
		lvl = zstd.EncoderLevelFromZstd(level)
	}
	return &zstdCodec{level: lvl}
}

func (z *zstdCodec) encoder() (*zstd.Encoder, error) {
	if z.enc == nil {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(z.level))
		if err != nil {
			return nil, fmt.Errorf("parquet: zstd encoder: %w", err)
		}
		z.enc = enc
	}
	return z.enc, nil
}

func (z *zstdCodec) decoder() (*zstd.Decoder, error) {
	if z.dec == nil {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("parquet: zstd decoder: %w", err)
		}
		z.dec = dec
	}
	return z.dec, nil
}

func (z *zstdCodec) Compress(dst, src []byte) ([]byte, error) {
	enc, err := z.encoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(src, dst[:0]), nil
}

func (z *zstdCodec) Decompress(dst, src []byte, uncompressedSize int) ([]byte, error) {
	dec, err := z.decoder()
	if err != nil {
		return nil, err
	}
	out := dst[:0]
	if uncompressedSize > 0 && cap(out) < uncompressedSize {
		out = make([]byte, 0, uncompressedSize)
	}
	res, err := dec.DecodeAll(src, out)
	if err != nil {
		return nil, fmt.Errorf("parquet: zstd decompress: %w", err)
	}
	return res, nil
}

func (z *zstdCodec) CompressBound(n int) int {
	return n + n/2 + 256
}
