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
	"compress/gzip"
	"fmt"
	"io"
)

// gzipCodec wraps the standard library's gzip, the same codec the teacher
// uses for GZIP column chunks; there is no third-party gzip implementation
// in the example pack, so this is the one codec kept on the stdlib.
type gzipCodec struct{ level int }

func newGzipCodec(level int) *gzipCodec {
	if level == DefaultCompressionLevel {
		level = gzip.DefaultCompression
	}
	return &gzipCodec{level: level}
}

func (g *gzipCodec) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])
	w, err := gzip.NewWriterLevel(buf, g.level)
	if err != nil {
		return nil, fmt.Errorf("parquet: gzip writer: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("parquet: gzip compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("parquet: gzip compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *gzipCodec) Decompress(dst, src []byte, uncompressedSize int) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parquet: gzip reader: %w", err)
	}
	defer r.Close()
	out := dst[:0]
	if uncompressedSize > 0 && cap(out) < uncompressedSize {
		out = make([]byte, 0, uncompressedSize)
	}
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("parquet: gzip decompress: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *gzipCodec) CompressBound(n int) int { return n + n/3 + 128 }
