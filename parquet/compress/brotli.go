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
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

type brotliCodec struct{ quality int }

func newBrotliCodec(level int) *brotliCodec {
	if level == DefaultCompressionLevel {
		level = brotli.DefaultCompression
	}
	return &brotliCodec{quality: level}
}

func (b *brotliCodec) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	w := brotli.NewWriterLevel(buf, b.quality)
	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("parquet: brotli compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("parquet: brotli compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *brotliCodec) Decompress(dst, src []byte, uncompressedSize int) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	out := dst[:0]
	if uncompressedSize > 0 && cap(out) < uncompressedSize {
		out = make([]byte, 0, uncompressedSize)
	}
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("parquet: brotli decompress: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *brotliCodec) CompressBound(n int) int { return n + n/2 + 1024 }
