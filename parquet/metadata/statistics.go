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

package metadata

import (
	"encoding/binary"
	"math"

	"github.com/parquetcore/parquet-core/parquet/format"
)

// EncodedStatistics is the page/column-chunk-writer-side accumulator of
// already-plain-encoded min/max bytes plus the null/distinct counters,
// mirroring parquet-cpp's EncodedStatistics (metadata.h). A page writer
// (THE CORE's column-chunk encoder) fills one of these per page/chunk and
// hands it to the metadata builders below.
type EncodedStatistics struct {
	Min           []byte
	Max           []byte
	HasMin        bool
	HasMax        bool
	NullCount     int64
	DistinctCount int64
	HasNullCount     bool
	HasDistinctCount bool
}

func (e *EncodedStatistics) SetMin(v []byte) *EncodedStatistics { e.Min, e.HasMin = v, true; return e }
func (e *EncodedStatistics) SetMax(v []byte) *EncodedStatistics { e.Max, e.HasMax = v, true; return e }
func (e *EncodedStatistics) SetNullCount(n int64) *EncodedStatistics {
	e.NullCount, e.HasNullCount = n, true
	return e
}
func (e *EncodedStatistics) SetDistinctCount(n int64) *EncodedStatistics {
	e.DistinctCount, e.HasDistinctCount = n, true
	return e
}

func (e *EncodedStatistics) IsSet() bool {
	return e.HasMin || e.HasMax || e.HasNullCount || e.HasDistinctCount
}

// Merge folds other into e, adding other's null count to e's, replacing
// e's distinct count with other's, and leaving min/max untouched (column-chunk-level min/max accumulation
// across pages is a caller concern that compares decoded values, not raw
// bytes).
func (e *EncodedStatistics) Merge(other *EncodedStatistics) {
	if other.HasNullCount {
		e.NullCount += other.NullCount
		e.HasNullCount = true
	}
	if other.HasDistinctCount {
		e.DistinctCount = other.DistinctCount
		e.HasDistinctCount = true
	}
}

// EncodePlainInt32 and its siblings below little-endian-encode a fixed-width numeric physical value
// (BOOLEAN/INT32/INT64/FLOAT/DOUBLE) the way Parquet's PLAIN encoding
// would, so it can stand as a Statistics min/max byte string. ByteArray
// and FixedLenByteArray values are already raw bytes and need no encoding.
func EncodePlainInt32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func EncodePlainInt64(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

func EncodePlainFloat32(v float32) []byte {
	return EncodePlainInt32(int32(math.Float32bits(v)))
}

func EncodePlainFloat64(v float64) []byte {
	return EncodePlainInt64(int64(math.Float64bits(v)))
}

func EncodePlainBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodePlainInt32/Int64/Float32/Float64 reverse the Encode helpers above,
// used when a reader needs to compare decoded min/max against a predicate.
func DecodePlainInt32(b []byte) int32    { return int32(binary.LittleEndian.Uint32(b)) }
func DecodePlainInt64(b []byte) int64    { return int64(binary.LittleEndian.Uint64(b)) }
func DecodePlainFloat32(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }
func DecodePlainFloat64(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }

// Statistics is the read-side view of a decoded format.Statistics struct:
// which of the legacy (min/max) and modern (min_value/max_value) fields
// were present, plus the producer-correctness-adjusted decision on which
// pair is safe to trust.
type Statistics struct {
	HasMinMax       bool
	Min             []byte
	Max             []byte
	HasNullCount    bool
	NullCount       int64
	HasDistinctCount bool
	DistinctCount   int64
}

// StatisticsFromThrift resolves a decoded format.Statistics into the
// read-side view, preferring the modern min_value/max_value pair and
// falling back to the legacy min/max pair, matching parquet-cpp's
// ApplicationVersion-gated preference in metadata.cc.
func StatisticsFromThrift(s *format.Statistics, correctStats bool) Statistics {
	if s == nil {
		return Statistics{}
	}
	out := Statistics{}
	switch {
	case len(s.MinValue) > 0 || len(s.MaxValue) > 0:
		out.Min, out.Max = s.MinValue, s.MaxValue
		out.HasMinMax = true
	case correctStats && (len(s.Min) > 0 || len(s.Max) > 0):
		out.Min, out.Max = s.Min, s.Max
		out.HasMinMax = true
	}
	if s.NullCount != nil {
		out.HasNullCount, out.NullCount = true, *s.NullCount
	}
	if s.DistinctCount != nil {
		out.HasDistinctCount, out.DistinctCount = true, *s.DistinctCount
	}
	return out
}

// ToThrift lowers e into the wire Statistics struct, writing both the
// legacy and modern field pairs so that both old and new readers can make
// use of it, matching parquet-cpp's dual-write policy in metadata.cc.
func (e *EncodedStatistics) ToThrift() *format.Statistics {
	if !e.IsSet() {
		return nil
	}
	s := &format.Statistics{}
	if e.HasMin {
		s.Min, s.MinValue = e.Min, e.Min
	}
	if e.HasMax {
		s.Max, s.MaxValue = e.Max, e.Max
	}
	if e.HasNullCount {
		nc := e.NullCount
		s.NullCount = &nc
	}
	if e.HasDistinctCount {
		dc := e.DistinctCount
		s.DistinctCount = &dc
	}
	return s
}
