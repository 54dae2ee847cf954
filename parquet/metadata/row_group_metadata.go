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

import "github.com/parquetcore/parquet-core/parquet/format"

// RowGroupMetaData is the read-side wrapper around a decoded
// format.RowGroup, exposing its column chunks as ColumnChunkMetaData.
type RowGroupMetaData struct {
	rg      *format.RowGroup
	ordinal int16
	columns []*ColumnChunkMetaData
}

func NewRowGroupMetaData(rg *format.RowGroup, ordinal int16, writerVersion *ApplicationVersion) *RowGroupMetaData {
	r := &RowGroupMetaData{rg: rg, ordinal: ordinal}
	r.columns = make([]*ColumnChunkMetaData, len(rg.Columns))
	for i := range rg.Columns {
		r.columns[i] = NewColumnChunkMetaData(&rg.Columns[i], writerVersion, ordinal, int16(i))
	}
	return r
}

func (r *RowGroupMetaData) NumColumns() int { return len(r.columns) }
func (r *RowGroupMetaData) NumRows() int64  { return r.rg.NumRows }
func (r *RowGroupMetaData) TotalByteSize() int64 { return r.rg.TotalByteSize }
func (r *RowGroupMetaData) Ordinal() int16  { return r.ordinal }

func (r *RowGroupMetaData) ColumnChunk(i int) *ColumnChunkMetaData { return r.columns[i] }

func (r *RowGroupMetaData) SortingColumns() []int { return nil }
