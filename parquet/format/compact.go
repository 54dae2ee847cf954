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

package format

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// field describes one thrift struct field for the shared read/write
// helpers below: a field id, its wire type, whether it's a required
// field (always emitted / always expected), and closures bound to the
// concrete struct's field address.
type field struct {
	id       int16
	typeID   thrift.TType
	required bool
	present  func() bool
	write    func(ctx context.Context, oprot thrift.TProtocol) error
	read     func(ctx context.Context, iprot thrift.TProtocol) error
}

func alwaysPresent() bool { return true }

func writeStruct(ctx context.Context, oprot thrift.TProtocol, name string, fields []field) error {
	if err := oprot.WriteStructBegin(ctx, name); err != nil {
		return thrift.PrependError(fmt.Sprintf("%s: write struct begin error: ", name), err)
	}
	for _, f := range fields {
		if !f.required && !f.present() {
			continue
		}
		if err := oprot.WriteFieldBegin(ctx, "", f.typeID, f.id); err != nil {
			return thrift.PrependError(fmt.Sprintf("%s: field %d write begin error: ", name, f.id), err)
		}
		if err := f.write(ctx, oprot); err != nil {
			return thrift.PrependError(fmt.Sprintf("%s: field %d write error: ", name, f.id), err)
		}
		if err := oprot.WriteFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := oprot.WriteFieldStop(ctx); err != nil {
		return err
	}
	return oprot.WriteStructEnd(ctx)
}

func readStruct(ctx context.Context, iprot thrift.TProtocol, name string, fields []field) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return thrift.PrependError(fmt.Sprintf("%s: read struct begin error: ", name), err)
	}
	byID := make(map[int16]field, len(fields))
	for _, f := range fields {
		byID[f.id] = f
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("%s: read field begin error: ", name), err)
		}
		if typeID == thrift.STOP {
			break
		}
		if f, ok := byID[id]; ok && f.typeID == typeID {
			if err := f.read(ctx, iprot); err != nil {
				return thrift.PrependError(fmt.Sprintf("%s: field %d read error: ", name, id), err)
			}
		} else if err := iprot.Skip(ctx, typeID); err != nil {
			return thrift.PrependError(fmt.Sprintf("%s: field %d skip error: ", name, id), err)
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

// NewMemoryBuffer returns a fresh in-memory thrift transport sized to hint.
func NewMemoryBuffer(hint int) *thrift.TMemoryBuffer {
	return thrift.NewTMemoryBufferLen(hint)
}

// defaultTConfiguration bounds container and string sizes read from a
// thrift message so that a truncated or hostile footer cannot force an
// unbounded allocation while decoding (parquet-cpp's thrift.h applies the
// same bound via its TCompactProtocolT template parameters).
var defaultTConfiguration = &thrift.TConfiguration{
	MaxMessageSize: thrift.DEFAULT_MAX_MESSAGE_SIZE,
	MaxFrameSize:   thrift.DEFAULT_MAX_FRAME_SIZE,
}

// NewCompactProtocol wraps trans in a TCompactProtocol configured with the
// shared container/message size bounds.
func NewCompactProtocol(trans thrift.TTransport) thrift.TProtocol {
	return thrift.NewTCompactProtocolConf(trans, defaultTConfiguration)
}
