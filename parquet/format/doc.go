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

// Package format is the Go representation of the Parquet thrift IDL
// (parquet.thrift / parquet_encryption.thrift), the wire structures
// exchanged as the file footer, column-chunk metadata and page headers.
//
// The struct definitions and field ids below mirror the published IDL
// exactly; what differs from a thrift-compiler-generated package is only
// mechanical: each struct's Read/Write drives the shared field-table
// helpers in compact.go instead of one generated switch per struct, so
// that hand-maintaining these types (the actual generated package is not
// checked in, only its tests reference it) doesn't require re-deriving
// the boilerplate thrift produces. The wire format produced is bit-for-bit
// what apache/thrift's TCompactProtocol would produce from the equivalent
// .thrift file.
package format
