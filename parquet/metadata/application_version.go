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

// Package metadata implements the footer-metadata accessors and builders:
// parsing/validating a decoded thrift FileMetaData into read-side wrapper
// types, and accumulating writer-side state into one to be reserialized.
// Grounded on parquet-cpp's metadata.h/metadata.cc (original_source/).
package metadata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

// ApplicationVersion parses a FileMetaData.CreatedBy string of the form
// "application version (build build_hash)" and answers whether a file
// written by that application's statistics can be trusted, per the
// PARQUET-251/PARQUET-297 producer bugs. Grounded on metadata.cc's
// ApplicationVersion parsing and HasCorrectStatistics.
type ApplicationVersion struct {
	Application string
	Build       string

	Major int
	Minor int
	Patch int
	Unknown  string
	PreRelease string
}

var (
	// e.g. "parquet-mr version 1.8.0 (build 0fda28ef13c1e4a...)"
	createdByRegex = regexp.MustCompile(`(.*?)\s+version\s+([^(]*)(?:\((?:build\s+)?([^)]*)\))?`)
	versionRegex   = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-(.*))?$`)
)

// NewAppVersion parses createdBy, tolerating any string that doesn't match
// the expected "application version (build build_hash)" shape by recording
// it as producer "unknown" rather than crashing metadata reading; an
// "unknown" producer is always trusted by HasCorrectStatistics, matching
// metadata.cc's own fallback.
func NewAppVersion(createdBy string) *ApplicationVersion {
	v := &ApplicationVersion{}
	if strings.TrimSpace(createdBy) == "" {
		v.Application = "unknown"
		return v
	}
	m := createdByRegex.FindStringSubmatch(createdBy)
	if m == nil {
		v.Application = "unknown"
		return v
	}
	v.Application = strings.TrimSpace(m[1])
	v.Build = strings.TrimSpace(m[3])

	verStr := strings.TrimSpace(m[2])
	vm := versionRegex.FindStringSubmatch(verStr)
	if vm == nil {
		v.Unknown = verStr
		return v
	}
	v.Major, _ = strconv.Atoi(vm[1])
	v.Minor, _ = strconv.Atoi(vm[2])
	v.Patch, _ = strconv.Atoi(vm[3])
	v.PreRelease = vm[4]
	return v
}

// LessThan reports whether v is an older version than other of the same
// application; different applications never compare as less than.
func (v *ApplicationVersion) LessThan(other *ApplicationVersion) bool {
	if v.Application != other.Application {
		return false
	}
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// VersionEq reports exact (major, minor, patch) equality.
func (v *ApplicationVersion) VersionEq(major, minor, patch int) bool {
	return v.Major == major && v.Minor == minor && v.Patch == patch
}

// versionLt reports whether v is strictly older than (major, minor, patch).
func (v *ApplicationVersion) versionLt(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major < major
	}
	if v.Minor != minor {
		return v.Minor < minor
	}
	return v.Patch < patch
}

// parquetCppFixedStatsVersion and parquetMrFixedStatsVersion are the first
// versions of each producer known to compute signed/unsigned min/max
// statistics correctly for every sort order (PARQUET-297/PARQUET-1025).
// parquet251FixedVersion is the earlier, separate parquet-mr release that
// additionally fixed NaN handling in those statistics (PARQUET-251).
var (
	parquetCppFixedStatsVersion = versionTriple{1, 3, 0}
	parquetMrFixedStatsVersion  = versionTriple{1, 10, 0}
	parquet251FixedVersion      = versionTriple{1, 8, 0}
)

type versionTriple struct{ major, minor, patch int }

func (v *ApplicationVersion) versionLtTriple(t versionTriple) bool {
	return v.versionLt(t.major, t.minor, t.patch)
}

// HasCorrectStatistics reports whether colType's min/max statistics on a
// chunk written by v can be trusted, given the column's sort order and
// whether its recorded min equals its max. Ported from parquet-cpp's
// ApplicationVersion::HasCorrectStatistics (metadata.cc): a producer
// older than its "fixed stats" version is trusted only when the sort
// order is SIGNED or the min/max collapse to a single value, and even
// then only for non-byte-array types without further evidence; beyond
// that cutoff, any UNKNOWN sort order is never trusted, and parquet-mr
// additionally needs the earlier PARQUET-251 fix (1.8.0) for NaN handling.
func (v *ApplicationVersion) HasCorrectStatistics(colType format.Type, sortOrder schema.SortOrder, minEqualsMax bool) bool {
	preFixedStats := (v.Application == "parquet-cpp" && v.versionLtTriple(parquetCppFixedStatsVersion)) ||
		(v.Application == "parquet-mr" && v.versionLtTriple(parquetMrFixedStatsVersion))
	if preFixedStats {
		if sortOrder != schema.SortSIGNED && !minEqualsMax {
			return false
		}
		if colType != format.Type_FIXED_LEN_BYTE_ARRAY && colType != format.Type_BYTE_ARRAY {
			return true
		}
	}

	if v.Application == "unknown" {
		return true
	}
	if sortOrder == schema.SortUNKNOWN {
		return false
	}
	if v.Application == "parquet-mr" && v.versionLtTriple(parquet251FixedVersion) {
		return false
	}
	return true
}
