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

// Package compress implements the "opaque stream transform" compressor
// collaborator of spec.md §1/§6: one real codec per name the teacher's
// parquet/compress package supports, each backed by the ecosystem library
// the teacher depends on for it.
package compress

import (
	"fmt"

	"github.com/parquetcore/parquet-core/parquet/format"
)

// Compression identifies a column-chunk compression codec.
type Compression format.CompressionCodec

const (
	Compression_Uncompressed = Compression(format.CompressionCodec_UNCOMPRESSED)
	Compression_Snappy       = Compression(format.CompressionCodec_SNAPPY)
	Compression_Gzip         = Compression(format.CompressionCodec_GZIP)
	Compression_Brotli       = Compression(format.CompressionCodec_BROTLI)
	Compression_LZ4Raw       = Compression(format.CompressionCodec_LZ4_RAW)
	Compression_Zstd         = Compression(format.CompressionCodec_ZSTD)
)

var Codecs = struct {
	Uncompressed Compression
	Snappy       Compression
	Gzip         Compression
	Brotli       Compression
	LZ4Raw       Compression
	Zstd         Compression
}{
	Compression_Uncompressed, Compression_Snappy, Compression_Gzip,
	Compression_Brotli, Compression_LZ4Raw, Compression_Zstd,
}

func (c Compression) String() string { return format.CompressionCodec(c).String() }

// DefaultCompressionLevel means "let the codec choose its own default".
const DefaultCompressionLevel = -1

// Codec is an opaque compression stream transform: a single buffer in, a
// single buffer out. An implementation may cache reusable encoder/decoder
// state between calls, as the zstd codec does. The page writer never sees a codec's
// internals, matching spec.md §6's "Compressor" producer contract.
type Codec interface {
	Compress(dst, src []byte) ([]byte, error)
	Decompress(dst, src []byte, uncompressedSize int) ([]byte, error)
	CompressBound(srcLen int) int
}

// GetCodec returns the Codec implementation for typ at the given
// compression level (DefaultCompressionLevel to use the codec's default).
func GetCodec(typ Compression, level int) (Codec, error) {
	switch typ {
	case Compression_Uncompressed:
		return uncompressedCodec{}, nil
	case Compression_Snappy:
		return snappyCodec{}, nil
	case Compression_Gzip:
		return newGzipCodec(level), nil
	case Compression_Brotli:
		return newBrotliCodec(level), nil
	case Compression_LZ4Raw:
		return lz4Codec{}, nil
	case Compression_Zstd:
		return newZstdCodec(level), nil
	default:
		return nil, fmt.Errorf("parquet: unsupported compression codec %s", Compression(typ))
	}
}

type uncompressedCodec struct{}

func (uncompressedCodec) Compress(dst, src []byte) ([]byte, error) { return append(dst[:0], src...), nil }
func (uncompressedCodec) Decompress(dst, src []byte, _ int) ([]byte, error) {
	return append(dst[:0], src...), nil
}
func (uncompressedCodec) CompressBound(n int) int { return n }
