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

package schema

import "github.com/parquetcore/parquet-core/parquet/format"

// LogicalType annotates a primitive node with its semantic interpretation
// (decimal, timestamp, string, ...), on top of the physical Type. The
// only behavior THE CORE needs from it is the converted-type it lowers to
// for the footer and the sort order it implies for statistics.
type LogicalType interface {
	SortOrder() SortOrder
	ConvertedType() (format.ConvertedType, bool)
	String() string
	isDecimal() bool
}

// NoLogicalType is the absence of an annotation; sort order then follows
// the physical type alone.
type NoLogicalType struct{}

func (NoLogicalType) SortOrder() SortOrder                        { return SortTypeDefinedOrder }
func (NoLogicalType) ConvertedType() (format.ConvertedType, bool) { return 0, false }
func (NoLogicalType) String() string                              { return "None" }
func (NoLogicalType) isDecimal() bool                              { return false }

// StringLogicalType marks a BYTE_ARRAY column as UTF8 text.
type StringLogicalType struct{}

func (StringLogicalType) SortOrder() SortOrder { return SortUNSIGNED }
func (StringLogicalType) ConvertedType() (format.ConvertedType, bool) {
	return format.ConvertedType_UTF8, true
}
func (StringLogicalType) String() string { return "String" }
func (StringLogicalType) isDecimal() bool { return false }

// DecimalLogicalType marks a column as a fixed-precision decimal value.
type DecimalLogicalType struct {
	precision int32
	scale     int32
}

func NewDecimalLogicalType(precision, scale int32) DecimalLogicalType {
	return DecimalLogicalType{precision: precision, scale: scale}
}

func (d DecimalLogicalType) Precision() int32 { return d.precision }
func (d DecimalLogicalType) Scale() int32     { return d.scale }
func (d DecimalLogicalType) SortOrder() SortOrder {
	return SortSIGNED
}
func (d DecimalLogicalType) ConvertedType() (format.ConvertedType, bool) {
	return format.ConvertedType_DECIMAL, true
}
func (d DecimalLogicalType) String() string { return "Decimal" }
func (d DecimalLogicalType) isDecimal() bool { return true }

// TimeUnit is the resolution of a Time/Timestamp logical type.
type TimeUnit int8

const (
	TimeUnitMillis TimeUnit = iota
	TimeUnitMicros
	TimeUnitNanos
)

// TimeLogicalType marks an INT32/INT64 column as a time-of-day value.
type TimeLogicalType struct {
	isAdjustedToUTC bool
	unit            TimeUnit
}

func NewTimeLogicalType(isAdjustedToUTC bool, unit TimeUnit) TimeLogicalType {
	return TimeLogicalType{isAdjustedToUTC: isAdjustedToUTC, unit: unit}
}

func (t TimeLogicalType) SortOrder() SortOrder { return SortSIGNED }
func (t TimeLogicalType) ConvertedType() (format.ConvertedType, bool) {
	switch t.unit {
	case TimeUnitMillis:
		return format.ConvertedType_TIME_MILLIS, true
	case TimeUnitMicros:
		return format.ConvertedType_TIME_MICROS, true
	default:
		return 0, false
	}
}
func (t TimeLogicalType) String() string  { return "Time" }
func (t TimeLogicalType) isDecimal() bool { return false }

// TimestampLogicalType marks an INT64 column as an instant in time.
type TimestampLogicalType struct {
	isAdjustedToUTC bool
	unit            TimeUnit
}

func NewTimestampLogicalType(isAdjustedToUTC bool, unit TimeUnit) TimestampLogicalType {
	return TimestampLogicalType{isAdjustedToUTC: isAdjustedToUTC, unit: unit}
}

func (t TimestampLogicalType) SortOrder() SortOrder { return SortSIGNED }
func (t TimestampLogicalType) ConvertedType() (format.ConvertedType, bool) {
	switch t.unit {
	case TimeUnitMillis:
		return format.ConvertedType_TIMESTAMP_MILLIS, true
	case TimeUnitMicros:
		return format.ConvertedType_TIMESTAMP_MICROS, true
	default:
		return 0, false
	}
}
func (t TimestampLogicalType) String() string  { return "Timestamp" }
func (t TimestampLogicalType) isDecimal() bool { return false }

// IntLogicalType marks an INT32/INT64 column as a sized, possibly-unsigned
// integer.
type IntLogicalType struct {
	bitWidth int8
	signed   bool
}

func NewIntLogicalType(bitWidth int8, signed bool) IntLogicalType {
	return IntLogicalType{bitWidth: bitWidth, signed: signed}
}

func (i IntLogicalType) SortOrder() SortOrder {
	if i.signed {
		return SortSIGNED
	}
	return SortUNSIGNED
}
func (i IntLogicalType) ConvertedType() (format.ConvertedType, bool) {
	key := [2]int8{i.bitWidth, boolToI8(i.signed)}
	m := map[[2]int8]format.ConvertedType{
		{8, 1}: format.ConvertedType_INT_8, {8, 0}: format.ConvertedType_UINT_8,
		{16, 1}: format.ConvertedType_INT_16, {16, 0}: format.ConvertedType_UINT_16,
		{32, 1}: format.ConvertedType_INT_32, {32, 0}: format.ConvertedType_UINT_32,
		{64, 1}: format.ConvertedType_INT_64, {64, 0}: format.ConvertedType_UINT_64,
	}
	ct, ok := m[key]
	return ct, ok
}
func (i IntLogicalType) String() string  { return "Int" }
func (i IntLogicalType) isDecimal() bool { return false }

func boolToI8(b bool) int8 {
	if b {
		return 1
	}
	return 0
}
