package zviewpb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"zview"
)

func TestRoundTrip(t *testing.T) {
	b, err := Marshal(zview.Lit("hello\x00"))
	require.NoError(t, err)

	v, err := Unmarshal[byte](b)
	require.NoError(t, err)
	assert.True(t, zview.Equal(zview.Lit("hello\x00"), v))

	c, err := v.At(v.Len())
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestWireFormat(t *testing.T) {
	b, err := Marshal(zview.U8Lit("hi\x00"))
	require.NoError(t, err)

	var m wrapperspb.BytesValue
	require.NoError(t, proto.Unmarshal(b, &m))
	assert.Equal(t, []byte("hi"), m.GetValue())
}

func TestBytesValue(t *testing.T) {
	src := []byte("abc\x00")
	m := ToBytesValue(zview.FromTerminated(src))
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), m.GetValue())

	v := FromBytesValue[zview.Char8](m)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, "abc", v.String())

	empty := FromBytesValue[byte](nil)
	assert.True(t, empty.Empty())
	assert.Zero(t, *empty.CStr())
}

func TestEmptyView(t *testing.T) {
	b, err := Marshal(zview.ZStringView{})
	require.NoError(t, err)

	v, err := Unmarshal[byte](b)
	require.NoError(t, err)
	assert.True(t, v.Empty())
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := Unmarshal[byte]([]byte{0x0a, 0x05, 'h'})
	assert.ErrorContains(t, err, "zviewpb: decoding view")
}
