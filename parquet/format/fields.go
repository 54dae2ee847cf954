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

	"github.com/apache/thrift/lib/go/thrift"
)

func reqI32(id int16, p *int32) field {
	return field{id: id, typeID: thrift.I32, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteI32(ctx, *p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadI32(ctx)
			*p = v
			return err
		}}
}

func optI32(id int16, p **int32) field {
	return field{id: id, typeID: thrift.I32, present: func() bool { return *p != nil },
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteI32(ctx, **p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadI32(ctx)
			*p = &v
			return err
		}}
}

func reqI64(id int16, p *int64) field {
	return field{id: id, typeID: thrift.I64, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteI64(ctx, *p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadI64(ctx)
			*p = v
			return err
		}}
}

func optI64(id int16, p **int64) field {
	return field{id: id, typeID: thrift.I64, present: func() bool { return *p != nil },
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteI64(ctx, **p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadI64(ctx)
			*p = &v
			return err
		}}
}

func optI16(id int16, p **int16) field {
	return field{id: id, typeID: thrift.I16, present: func() bool { return *p != nil },
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteI16(ctx, **p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadI16(ctx)
			*p = &v
			return err
		}}
}

func reqBool(id int16, p *bool) field {
	return field{id: id, typeID: thrift.BOOL, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteBool(ctx, *p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadBool(ctx)
			*p = v
			return err
		}}
}

func optBool(id int16, p **bool) field {
	return field{id: id, typeID: thrift.BOOL, present: func() bool { return *p != nil },
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteBool(ctx, **p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadBool(ctx)
			*p = &v
			return err
		}}
}

func reqString(id int16, p *string) field {
	return field{id: id, typeID: thrift.STRING, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteString(ctx, *p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadString(ctx)
			*p = v
			return err
		}}
}

func optString(id int16, p **string) field {
	return field{id: id, typeID: thrift.STRING, present: func() bool { return *p != nil },
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteString(ctx, **p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadString(ctx)
			*p = &v
			return err
		}}
}

// binary fields are wire-identical to strings in the compact protocol but
// carry a []byte in Go, with nil meaning "absent" for optional fields.
func optBinary(id int16, p *[]byte) field {
	return field{id: id, typeID: thrift.STRING, present: func() bool { return *p != nil },
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteBinary(ctx, *p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadBinary(ctx)
			*p = v
			return err
		}}
}

func reqBinary(id int16, p *[]byte) field {
	return field{id: id, typeID: thrift.STRING, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteBinary(ctx, *p) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadBinary(ctx)
			*p = v
			return err
		}}
}

// reqStruct/optStruct embed a nested thrift message (something with its
// own Read/Write) as a single STRUCT-typed field.
type thriftStruct interface {
	Write(ctx context.Context, oprot thrift.TProtocol) error
	Read(ctx context.Context, iprot thrift.TProtocol) error
}

func reqStruct(id int16, v thriftStruct) field {
	return field{id: id, typeID: thrift.STRUCT, required: true, present: alwaysPresent,
		write: v.Write, read: v.Read}
}

func structPresent[T thriftStruct](p *T, isNil func(T) bool) func() bool {
	return func() bool { return !isNil(*p) }
}

func optStructPtr[T thriftStruct](id int16, p *T, isNil func(T) bool, write func(ctx context.Context, oprot thrift.TProtocol) error, read func(ctx context.Context, iprot thrift.TProtocol) error) field {
	return field{id: id, typeID: thrift.STRUCT, present: structPresent(p, isNil), write: write, read: read}
}

func reqI32Enum[E ~int32](id int16, p *E) field {
	return field{id: id, typeID: thrift.I32, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteI32(ctx, int32(*p)) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadI32(ctx)
			*p = E(v)
			return err
		}}
}

func optI32Enum[E ~int32](id int16, p **E) field {
	return field{id: id, typeID: thrift.I32, present: func() bool { return *p != nil },
		write: func(ctx context.Context, oprot thrift.TProtocol) error { return oprot.WriteI32(ctx, int32(**p)) },
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			v, err := iprot.ReadI32(ctx)
			e := E(v)
			*p = &e
			return err
		}}
}

func reqListStruct[T any](id int16, p *[]T, newElem func() T) field {
	return field{id: id, typeID: thrift.LIST, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error {
			if err := oprot.WriteListBegin(ctx, thrift.STRUCT, len(*p)); err != nil {
				return err
			}
			for i := range *p {
				if err := any(&(*p)[i]).(thriftStruct).Write(ctx, oprot); err != nil {
					return err
				}
			}
			return oprot.WriteListEnd(ctx)
		},
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			out := make([]T, 0, size)
			for i := 0; i < size; i++ {
				v := newElem()
				if err := any(&v).(thriftStruct).Read(ctx, iprot); err != nil {
					return err
				}
				out = append(out, v)
			}
			*p = out
			return iprot.ReadListEnd(ctx)
		}}
}

func optListStruct[T any](id int16, p *[]T, newElem func() T) field {
	f := reqListStruct(id, p, newElem)
	f.required = false
	f.present = func() bool { return *p != nil }
	return f
}

func reqListString(id int16, p *[]string) field {
	return field{id: id, typeID: thrift.LIST, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error {
			if err := oprot.WriteListBegin(ctx, thrift.STRING, len(*p)); err != nil {
				return err
			}
			for _, v := range *p {
				if err := oprot.WriteString(ctx, v); err != nil {
					return err
				}
			}
			return oprot.WriteListEnd(ctx)
		},
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			out := make([]string, 0, size)
			for i := 0; i < size; i++ {
				v, err := iprot.ReadString(ctx)
				if err != nil {
					return err
				}
				out = append(out, v)
			}
			*p = out
			return iprot.ReadListEnd(ctx)
		}}
}

func reqListI32Enum[E ~int32](id int16, p *[]E) field {
	return field{id: id, typeID: thrift.LIST, required: true, present: alwaysPresent,
		write: func(ctx context.Context, oprot thrift.TProtocol) error {
			if err := oprot.WriteListBegin(ctx, thrift.I32, len(*p)); err != nil {
				return err
			}
			for _, v := range *p {
				if err := oprot.WriteI32(ctx, int32(v)); err != nil {
					return err
				}
			}
			return oprot.WriteListEnd(ctx)
		},
		read: func(ctx context.Context, iprot thrift.TProtocol) error {
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return err
			}
			out := make([]E, 0, size)
			for i := 0; i < size; i++ {
				v, err := iprot.ReadI32(ctx)
				if err != nil {
					return err
				}
				out = append(out, E(v))
			}
			*p = out
			return iprot.ReadListEnd(ctx)
		}}
}
