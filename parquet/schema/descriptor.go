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

import (
	"strings"

	"github.com/parquetcore/parquet-core/parquet/format"
)

// ColumnPath is a schema leaf's dotted path, e.g. "a.b.c".
type ColumnPath []string

func (c ColumnPath) String() string { return strings.Join(c, ".") }

// ColumnDescriptor binds a primitive leaf node to its flattened position:
// its full path, and the max definition/repetition levels an encoder
// needs to represent optional/repeated ancestors.
type ColumnDescriptor struct {
	node             *PrimitiveNode
	path             ColumnPath
	maxDefLevel      int16
	maxRepLevel      int16
}

func (c *ColumnDescriptor) Node() *PrimitiveNode    { return c.node }
func (c *ColumnDescriptor) Path() ColumnPath        { return c.path }
func (c *ColumnDescriptor) PhysicalType() format.Type { return c.node.PhysicalType() }
func (c *ColumnDescriptor) LogicalType() LogicalType  { return c.node.LogicalType() }
func (c *ColumnDescriptor) TypeLength() int32         { return c.node.TypeLength() }
func (c *ColumnDescriptor) MaxDefinitionLevel() int16 { return c.maxDefLevel }
func (c *ColumnDescriptor) MaxRepetitionLevel() int16 { return c.maxRepLevel }
func (c *ColumnDescriptor) SortOrder() SortOrder {
	return GetSortOrder(c.node.LogicalType(), c.node.PhysicalType())
}

// Schema owns the root group node and the flattened view derived from it:
// the ordered leaf column descriptors and the pre-order []SchemaElement
// list a FileMetaData serializes.
type Schema struct {
	root     *GroupNode
	columns  []*ColumnDescriptor
	elements []format.SchemaElement
}

// NewSchema flattens root into its column descriptor list and thrift
// SchemaElement list, computing each leaf's definition/repetition levels
// by walking the tree root-to-leaf.
func NewSchema(root *GroupNode) *Schema {
	s := &Schema{root: root}
	s.elements = append(s.elements, rootElement(root))
	s.walk(root, nil, 0, 0)
	return s
}

func rootElement(root *GroupNode) format.SchemaElement {
	n := int32(len(root.Fields()))
	return format.SchemaElement{Name: root.Name(), NumChildren: &n}
}

func (s *Schema) walk(g *GroupNode, pathPrefix ColumnPath, defLevel, repLevel int16) {
	for _, f := range g.Fields() {
		path := append(append(ColumnPath{}, pathPrefix...), f.Name())
		curDef, curRep := defLevel, repLevel
		switch f.Repetition() {
		case Optional:
			curDef++
		case Repeated:
			curDef++
			curRep++
		}
		if grp, ok := f.(*GroupNode); ok {
			n := int32(len(grp.Fields()))
			rt := format.FieldRepetitionType(f.Repetition())
			s.elements = append(s.elements, format.SchemaElement{
				Name: f.Name(), RepetitionType: &rt, NumChildren: &n,
			})
			s.walk(grp, path, curDef, curRep)
			continue
		}
		prim := f.(*PrimitiveNode)
		elem := format.SchemaElement{Name: f.Name()}
		rt := format.FieldRepetitionType(f.Repetition())
		elem.RepetitionType = &rt
		pt := prim.PhysicalType()
		elem.Type = &pt
		if prim.PhysicalType() == format.Type_FIXED_LEN_BYTE_ARRAY {
			tl := prim.TypeLength()
			elem.TypeLength = &tl
		}
		if prim.LogicalType() != nil {
			if ct, ok := prim.LogicalType().ConvertedType(); ok {
				elem.ConvertedType = &ct
			}
			if d, ok := prim.LogicalType().(DecimalLogicalType); ok {
				scale, precision := d.Scale(), d.Precision()
				elem.Scale = &scale
				elem.Precision = &precision
			}
		}
		s.elements = append(s.elements, elem)
		s.columns = append(s.columns, &ColumnDescriptor{
			node: prim, path: path, maxDefLevel: curDef, maxRepLevel: curRep,
		})
	}
}

func (s *Schema) Root() *GroupNode                { return s.root }
func (s *Schema) NumColumns() int                 { return len(s.columns) }
func (s *Schema) Column(i int) *ColumnDescriptor   { return s.columns[i] }
func (s *Schema) Columns() []*ColumnDescriptor     { return s.columns }
func (s *Schema) SchemaElements() []format.SchemaElement { return s.elements }

// ColumnIndexByPath returns the flattened column index for path, or -1.
func (s *Schema) ColumnIndexByPath(path string) int {
	for i, c := range s.columns {
		if c.Path().String() == path {
			return i
		}
	}
	return -1
}
