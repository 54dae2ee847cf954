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

// Package schema is a condensed stand-in for the schema flattener/node
// tree that spec.md §1 treats as an assumed external collaborator: a
// primitive/group node tree, logical-type annotations, and a descriptor
// that flattens the tree into the []format.SchemaElement list a
// FileMetaData carries and that assigns each leaf its dotted column path.
package schema

import (
	"fmt"

	"github.com/parquetcore/parquet-core/parquet/format"
)

// Repetition mirrors format.FieldRepetitionType under the schema package's
// own name to avoid an import cycle with the root parquet package.
type Repetition format.FieldRepetitionType

const (
	Required = Repetition(format.FieldRepetitionType_REQUIRED)
	Optional = Repetition(format.FieldRepetitionType_OPTIONAL)
	Repeated = Repetition(format.FieldRepetitionType_REPEATED)
)

// Node is one element of the schema tree: either a primitive (leaf) node
// or a group node with children.
type Node interface {
	Name() string
	Repetition() Repetition
	FieldID() int32
	isGroup() bool
}

type baseNode struct {
	name       string
	repetition Repetition
	fieldID    int32
}

func (b *baseNode) Name() string          { return b.name }
func (b *baseNode) Repetition() Repetition { return b.repetition }
func (b *baseNode) FieldID() int32         { return b.fieldID }

// PrimitiveNode is a schema leaf: a physical type with an optional
// logical-type annotation and, for FIXED_LEN_BYTE_ARRAY, a byte width.
type PrimitiveNode struct {
	baseNode
	physical    format.Type
	logicalType LogicalType
	typeLength  int32
}

func (p *PrimitiveNode) isGroup() bool          { return false }
func (p *PrimitiveNode) PhysicalType() format.Type { return p.physical }
func (p *PrimitiveNode) LogicalType() LogicalType  { return p.logicalType }
func (p *PrimitiveNode) TypeLength() int32         { return p.typeLength }

func newPrimitive(name string, rep Repetition, physical format.Type, lt LogicalType, typeLength int32, fieldID int32) *PrimitiveNode {
	return &PrimitiveNode{
		baseNode:    baseNode{name: name, repetition: rep, fieldID: fieldID},
		physical:    physical,
		logicalType: lt,
		typeLength:  typeLength,
	}
}

// NewPrimitiveNodeLogical builds a primitive leaf annotated with a logical
// type; typeLength is only meaningful for FIXED_LEN_BYTE_ARRAY.
func NewPrimitiveNodeLogical(name string, rep Repetition, lt LogicalType, physical format.Type, typeLength int32, fieldID int32) (*PrimitiveNode, error) {
	if physical == format.Type_FIXED_LEN_BYTE_ARRAY && typeLength <= 0 {
		return nil, fmt.Errorf("parquet: invalid fixed length byte array type length %d for %q", typeLength, name)
	}
	return newPrimitive(name, rep, physical, lt, typeLength, fieldID), nil
}

func NewBooleanNode(name string, rep Repetition, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_BOOLEAN, NoLogicalType{}, 0, fieldID)
}
func NewInt32Node(name string, rep Repetition, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_INT32, NoLogicalType{}, 0, fieldID)
}
func NewInt64Node(name string, rep Repetition, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_INT64, NoLogicalType{}, 0, fieldID)
}
func NewInt96Node(name string, rep Repetition, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_INT96, NoLogicalType{}, 0, fieldID)
}
func NewFloat32Node(name string, rep Repetition, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_FLOAT, NoLogicalType{}, 0, fieldID)
}
func NewFloat64Node(name string, rep Repetition, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_DOUBLE, NoLogicalType{}, 0, fieldID)
}
func NewByteArrayNode(name string, rep Repetition, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_BYTE_ARRAY, NoLogicalType{}, 0, fieldID)
}
func NewFixedLenByteArrayNode(name string, rep Repetition, typeLength int32, fieldID int32) *PrimitiveNode {
	return newPrimitive(name, rep, format.Type_FIXED_LEN_BYTE_ARRAY, NoLogicalType{}, typeLength, fieldID)
}

// FieldList is an ordered list of child nodes of a group.
type FieldList []Node

// GroupNode is a schema group (the file-level root is itself one).
type GroupNode struct {
	baseNode
	fields FieldList
}

func (g *GroupNode) isGroup() bool     { return true }
func (g *GroupNode) Fields() FieldList { return g.fields }

// NewGroupNode builds a group with the given children.
func NewGroupNode(name string, rep Repetition, fields FieldList, fieldID int32) (*GroupNode, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("parquet: group node %q must have at least one field", name)
	}
	return &GroupNode{baseNode: baseNode{name: name, repetition: rep, fieldID: fieldID}, fields: fields}, nil
}
