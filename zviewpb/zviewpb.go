// Package zviewpb carries narrow terminated views across process
// boundaries as protobuf BytesValue messages.
package zviewpb

import (
	"fmt"
	"unsafe"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"zview"
)

// ToBytesValue returns a message holding a copy of v's units. The
// terminator is not part of the message.
func ToBytesValue[T ~uint8](v zview.View[T]) *wrapperspb.BytesValue {
	return wrapperspb.Bytes(append([]byte(nil), unitBytes(v)...))
}

// FromBytesValue returns a view over a newly allocated, terminated copy
// of the message's bytes.
func FromBytesValue[T ~uint8](m *wrapperspb.BytesValue) zview.View[T] {
	b := m.GetValue()
	buf := make([]T, len(b)+1)
	for i, c := range b {
		buf[i] = T(c)
	}
	return zview.FromTerminated(buf)
}

// Marshal encodes v as a BytesValue message.
func Marshal[T ~uint8](v zview.View[T]) ([]byte, error) {
	b, err := proto.Marshal(&wrapperspb.BytesValue{Value: unitBytes(v)})
	if err != nil {
		return nil, fmt.Errorf("zviewpb: encoding view: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a BytesValue message into a terminated view.
func Unmarshal[T ~uint8](b []byte) (zview.View[T], error) {
	var m wrapperspb.BytesValue
	if err := proto.Unmarshal(b, &m); err != nil {
		return zview.View[T]{}, fmt.Errorf("zviewpb: decoding view: %w", err)
	}
	return FromBytesValue[T](&m), nil
}

func unitBytes[T ~uint8](v zview.View[T]) []byte {
	u := v.Units()
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(u))), len(u))
}
