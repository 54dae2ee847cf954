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

// SortOrder is parquet-cpp's internal notion of how a physical type's byte
// representation compares, derived from the logical type when present and
// from the physical type otherwise (metadata.cc's SortOrder::Get).
type SortOrder int8

const (
	SortSIGNED SortOrder = iota
	SortUNSIGNED
	SortUNKNOWN
	// SortTypeDefinedOrder is a placeholder meaning "defer to the physical
	// type's default", resolved by DefaultSortOrder below.
	SortTypeDefinedOrder
)

func (s SortOrder) String() string {
	switch s {
	case SortSIGNED:
		return "SIGNED"
	case SortUNSIGNED:
		return "UNSIGNED"
	default:
		return "UNKNOWN"
	}
}

// DefaultSortOrder returns the sort order implied by a physical type alone
// (no logical-type annotation): BYTE_ARRAY/FIXED_LEN_BYTE_ARRAY compare as
// unsigned byte strings, everything else compares as a signed number.
func DefaultSortOrder(t format.Type) SortOrder {
	switch t {
	case format.Type_BOOLEAN, format.Type_INT32, format.Type_INT64,
		format.Type_FLOAT, format.Type_DOUBLE:
		return SortSIGNED
	case format.Type_BYTE_ARRAY, format.Type_FIXED_LEN_BYTE_ARRAY:
		return SortUNSIGNED
	case format.Type_INT96:
		return SortUNKNOWN
	default:
		return SortUNKNOWN
	}
}

// GetSortOrder resolves the effective sort order for a (physical type,
// logical type) pair, the logical type taking precedence when present.
func GetSortOrder(lt LogicalType, physical format.Type) SortOrder {
	if lt == nil {
		return DefaultSortOrder(physical)
	}
	if so := lt.SortOrder(); so != SortTypeDefinedOrder {
		return so
	}
	return DefaultSortOrder(physical)
}
