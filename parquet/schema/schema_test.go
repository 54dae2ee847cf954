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

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parquetcore/parquet-core/parquet/format"
	"github.com/parquetcore/parquet-core/parquet/schema"
)

func TestNewSchemaFlattensNestedGroupsAndComputesLevels(t *testing.T) {
	id := schema.NewInt32Node("id", schema.Required, -1)
	name := schema.NewByteArrayNode("name", schema.Optional, -1)
	tag := schema.NewByteArrayNode("tag", schema.Repeated, -1)
	tags, err := schema.NewGroupNode("tags", schema.Optional, schema.FieldList{tag}, -1)
	require.NoError(t, err)

	root, err := schema.NewGroupNode("schema", schema.Required, schema.FieldList{id, name, tags}, -1)
	require.NoError(t, err)

	sc := schema.NewSchema(root)
	require.Equal(t, 3, sc.NumColumns())

	idCol := sc.Column(0)
	require.Equal(t, "id", idCol.Path().String())
	require.EqualValues(t, 0, idCol.MaxDefinitionLevel())
	require.EqualValues(t, 0, idCol.MaxRepetitionLevel())

	nameCol := sc.Column(1)
	require.Equal(t, "name", nameCol.Path().String())
	require.EqualValues(t, 1, nameCol.MaxDefinitionLevel())

	tagCol := sc.Column(2)
	require.Equal(t, "tags.tag", tagCol.Path().String())
	require.EqualValues(t, 2, tagCol.MaxDefinitionLevel())
	require.EqualValues(t, 1, tagCol.MaxRepetitionLevel())

	require.Equal(t, 2, sc.ColumnIndexByPath("tags.tag"))
	require.Equal(t, -1, sc.ColumnIndexByPath("missing"))
}

func TestSchemaElementsCarryConvertedTypeAndDecimalScale(t *testing.T) {
	dec, err := schema.NewPrimitiveNodeLogical("amount", schema.Required, schema.NewDecimalLogicalType(10, 2), format.Type_FIXED_LEN_BYTE_ARRAY, 16, -1)
	require.NoError(t, err)
	root, err := schema.NewGroupNode("schema", schema.Required, schema.FieldList{dec}, -1)
	require.NoError(t, err)

	sc := schema.NewSchema(root)
	elems := sc.SchemaElements()
	require.Len(t, elems, 2) // root + one leaf

	leaf := elems[1]
	require.NotNil(t, leaf.ConvertedType)
	require.Equal(t, format.ConvertedType_DECIMAL, *leaf.ConvertedType)
	require.NotNil(t, leaf.Scale)
	require.EqualValues(t, 2, *leaf.Scale)
	require.NotNil(t, leaf.Precision)
	require.EqualValues(t, 10, *leaf.Precision)
}

func TestNewPrimitiveNodeLogicalRejectsZeroLengthFixedLenByteArray(t *testing.T) {
	_, err := schema.NewPrimitiveNodeLogical("bad", schema.Required, schema.NoLogicalType{}, format.Type_FIXED_LEN_BYTE_ARRAY, 0, -1)
	require.Error(t, err)
}

func TestNewGroupNodeRejectsEmptyFieldList(t *testing.T) {
	_, err := schema.NewGroupNode("empty", schema.Required, nil, -1)
	require.Error(t, err)
}

func TestColumnDescriptorSortOrderFollowsLogicalType(t *testing.T) {
	str := schema.NewByteArrayNode("s", schema.Required, -1)
	root, err := schema.NewGroupNode("schema", schema.Required, schema.FieldList{str}, -1)
	require.NoError(t, err)
	sc := schema.NewSchema(root)
	require.Equal(t, schema.SortUNSIGNED, sc.Column(0).SortOrder())
}
