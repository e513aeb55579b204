package zview

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zview/strview"
)

func requireChecked(t *testing.T) {
	t.Helper()
	if !checked {
		t.Skip("precondition checks are compiled out")
	}
}

func assertTerminated[T Char](t *testing.T, v View[T]) {
	t.Helper()
	c, err := v.At(v.Len())
	require.NoError(t, err)
	assert.Zero(t, c, "unit at Len() must be the terminator")
	assert.Zero(t, v.Terminated()[v.Len()])
	assert.Len(t, v.Terminated(), v.Len()+1)
}

func TestConstructorsTerminate(t *testing.T) {
	buf := []byte("ab\x00cd\x00")
	owned, err := CString("owned")
	require.NoError(t, err)
	slice := make([]byte, 5, 6)
	copy(slice, "slice")

	tests := []struct {
		name string
		view ZStringView
		want string
	}{
		{"zero", ZStringView{}, ""},
		{"new", New(buf, 2), "ab"},
		{"new_interior_nul", New(buf, 5), "ab\x00cd"},
		{"from_terminated", FromTerminated(buf), "ab\x00cd"},
		{"scan", Scan(buf), "ab"},
		{"from_ptr", FromPtr(&buf[3]), "cd"},
		{"from_slice", FromSlice(slice), "slice"},
		{"cstring", owned, "owned"},
		{"lit", Lit("lit\x00"), "lit"},
		{"lit_empty", Lit("\x00"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTerminated(t, tt.view)
			assert.Equal(t, len(tt.want), tt.view.Len())
			assert.Equal(t, tt.want, string(tt.view.Units()))
		})
	}
}

func TestHelloScenario(t *testing.T) {
	v := Lit("hello\x00")
	assert.Equal(t, 5, v.Len())
	assert.False(t, v.Empty())

	c, err := v.At(5)
	require.NoError(t, err)
	assert.Equal(t, byte(0), c)

	assert.True(t, v.HasPrefix(strview.FromString("he")))
	assert.Equal(t, 0, v.Compare(strview.FromString("hello")))
	assert.Equal(t, byte('h'), v.Front())
	assert.Equal(t, byte('o'), v.Back())
}

func TestEmptyOwnedString(t *testing.T) {
	v, err := CString("")
	require.NoError(t, err)
	assert.True(t, v.Empty())
	assert.Zero(t, v.Len())
	assert.Zero(t, *v.CStr())

	var zero U32ZStringView
	assert.True(t, zero.Empty())
	assert.Zero(t, *zero.CStr())
	assert.Zero(t, zero.Index(0))
	assert.True(t, Equal(zero, U32Lit("")))
	assert.Equal(t, strview.View[rune]{}.Hash(), zero.Hash())
}

func TestRemovePrefix(t *testing.T) {
	v := Lit("hello world\x00")
	term := &v.Terminated()[v.Len()]

	v.RemovePrefix(6)
	assert.True(t, Equal(v, Lit("world\x00")))
	assert.Equal(t, 5, v.Len())
	assert.Same(t, term, &v.Terminated()[v.Len()], "narrowing must keep the same terminator")
	assertTerminated(t, v)

	v.RemovePrefix(0)
	assert.Equal(t, 5, v.Len())
	v.RemovePrefix(5)
	assert.True(t, v.Empty())
	assert.Same(t, term, v.CStr())

	var zero ZStringView
	zero.RemovePrefix(0)
	assert.True(t, zero.Empty())
}

func TestRemovePrefixEveryLength(t *testing.T) {
	const text = "terminated\x00"
	for k := 0; k <= len(text)-1; k++ {
		v := Lit(text)
		n := v.Len()
		v.RemovePrefix(k)
		assert.Equal(t, n-k, v.Len())
		assert.Equal(t, text[k:len(text)-1], v.String())
		assertTerminated(t, v)
	}
}

func TestLiteralsMatchPlainViews(t *testing.T) {
	assert.True(t, Lit("hello\x00").Equal(strview.FromString("hello")))
	assert.True(t, U8Lit("hello\x00").Equal(strview.Of([]Char8("hello"))))
	assert.True(t, U16Lit("hello").Equal(strview.Of(utf16.Encode([]rune("hello")))))
	assert.True(t, U32Lit("hello").Equal(strview.Of([]rune("hello"))))

	w := WLit("hello")
	assert.Equal(t, 5, w.Len())
	assert.Equal(t, "hello", w.String())
	assertTerminated(t, w)
}

func TestInequalityAndOrdering(t *testing.T) {
	hello, goodbye := Lit("hello\x00"), Lit("goodbye\x00")
	assert.False(t, Equal(hello, goodbye))
	assert.Equal(t, -1, Compare(goodbye, hello))
	assert.Equal(t, 1, Compare(hello, goodbye))
	assert.Equal(t, 0, Compare(hello, Lit("hello\x00")))

	views := []ZStringView{
		Lit("pear\x00"), Lit("apple\x00"), Lit("\x00"), Lit("app\x00"), Lit("banana\x00"),
	}
	slices.SortFunc(views, Compare[byte])
	got := make([]string, len(views))
	for i, v := range views {
		got[i] = v.String()
	}
	if diff := cmp.Diff([]string{"", "app", "apple", "banana", "pear"}, got); diff != "" {
		t.Errorf("sorted views mismatch (-want +got):\n%s", diff)
	}
}

func TestEqualityHashConsistency(t *testing.T) {
	words := []string{"", "a", "hello", "hellp", "hello "}
	for _, a := range words {
		for _, b := range words {
			za, err := CString(a)
			require.NoError(t, err)
			zb, err := CString(b)
			require.NoError(t, err)

			eq := Equal(za, zb)
			assert.Equal(t, eq, za.StrView().Equal(zb.StrView()), "%q vs %q", a, b)
			assert.Equal(t, eq, a == b, "%q vs %q", a, b)
			if eq {
				assert.Equal(t, za.Hash(), zb.Hash(), "%q vs %q", a, b)
			}
		}
	}
}

func TestHashMatchesPlainView(t *testing.T) {
	assert.Equal(t, strview.FromString("hello").Hash(), Lit("hello\x00").Hash())
	assert.Equal(t, strview.Of([]rune("hello")).Hash(), U32Lit("hello").Hash())
}

func TestAtBoundary(t *testing.T) {
	v := Lit("hello\x00")
	_, err := v.At(v.Len() + 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, strview.ErrOutOfRange))

	var rangeErr *strview.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 6, rangeErr.Pos)
	assert.Equal(t, 5, rangeErr.Len)
	assert.Equal(t, "zview.At", rangeErr.Op)

	_, err = v.At(-1)
	assert.ErrorIs(t, err, strview.ErrOutOfRange)
}

func TestDelegatedQueries(t *testing.T) {
	v := Lit("hello world\x00")
	plain := v.StrView()
	o := strview.FromString("o")

	assert.Equal(t, plain.Find(o, 5), v.Find(o, 5))
	assert.Equal(t, 7, v.Find(o, 5))
	assert.Equal(t, 6, v.FindUnit('w', 0))
	assert.Equal(t, 7, v.RFind(o, strview.NPos))
	assert.Equal(t, 9, v.RFindUnit('l', strview.NPos))
	assert.Equal(t, 2, v.FindFirstOf(strview.FromString("lw"), 0))
	assert.Equal(t, 9, v.FindLastOf(strview.FromString("lw"), strview.NPos))
	assert.Equal(t, 1, v.FindFirstNotOf(strview.FromString("h"), 0))
	assert.Equal(t, 1, v.FindFirstNotOfUnit('h', 0))
	assert.Equal(t, 9, v.FindLastNotOf(strview.FromString("d"), strview.NPos))
	assert.Equal(t, 9, v.FindLastNotOfUnit('d', strview.NPos))
	assert.Equal(t, strview.NPos, v.Find(strview.FromString("xyz"), 0))

	assert.True(t, v.HasSuffix(strview.FromString("world")))
	assert.True(t, v.HasPrefixUnit('h'))
	assert.True(t, v.HasSuffixUnit('d'))
	assert.True(t, v.Contains(strview.FromString("lo w")))
	assert.True(t, v.ContainsUnit(' '))

	sub, err := v.Substr(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "ell", sub.String())
	_, err = v.Substr(12, 1)
	assert.ErrorIs(t, err, strview.ErrOutOfRange)

	dst := make([]byte, 5)
	n, err := v.Copy(dst, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "world", string(dst))

	c, err := v.CompareSub(6, 5, Lit("world\x00").StrView(), 0, strview.NPos)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestIteration(t *testing.T) {
	v := U16Lit("abc")
	var forward, backward []uint16
	for _, c := range v.All() {
		forward = append(forward, c)
	}
	for _, c := range v.Backward() {
		backward = append(backward, c)
	}
	assert.Equal(t, []uint16{'a', 'b', 'c'}, forward)
	assert.Equal(t, []uint16{'c', 'b', 'a'}, backward)
}

func TestSwap(t *testing.T) {
	a, b := Lit("first\x00"), Lit("second\x00")
	a.Swap(&b)
	assert.Equal(t, "second", a.String())
	assert.Equal(t, "first", b.String())
	assertTerminated(t, a)
	assertTerminated(t, b)
}

func TestOutput(t *testing.T) {
	v := Lit("hello\x00")
	assert.Equal(t, "hello  |", fmt.Sprintf("%-7s|", v))
	assert.Equal(t, "  hello", fmt.Sprintf("%7v", v))
	assert.Equal(t, `"héllo"`, fmt.Sprintf("%q", U16Lit("héllo")))

	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "hello", buf.String())
}

func TestOwnedStrings(t *testing.T) {
	u8, err := U8String("héllo")
	require.NoError(t, err)
	assert.Equal(t, 6, u8.Len())
	assertTerminated(t, u8)

	u16, err := U16String("hi 🌍")
	require.NoError(t, err)
	assert.Equal(t, 5, u16.Len())
	assert.Equal(t, "hi 🌍", u16.String())
	assertTerminated(t, u16)

	u32, err := U32String("hi 🌍")
	require.NoError(t, err)
	assert.Equal(t, 4, u32.Len())
	assertTerminated(t, u32)

	w, err := WString("hé")
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
	assertTerminated(t, w)
}

func TestOwnedStringsRejectNUL(t *testing.T) {
	_, err := CString("a\x00b")
	assert.ErrorIs(t, err, ErrContainsNUL)
	_, err = U16String("a\x00b")
	assert.ErrorIs(t, err, ErrContainsNUL)
	_, err = U32String("\x00")
	assert.ErrorIs(t, err, ErrContainsNUL)
	assert.ErrorContains(t, err, "zview: U32String")
}

func TestFromPtrWide(t *testing.T) {
	u := []uint16{'h', 'i', 0, 'x'}
	v := FromPtr(&u[0])
	assert.Equal(t, 2, v.Len())
	assert.Same(t, &u[0], v.CStr())
	assertTerminated(t, v)
}

func TestNewClipsCapacity(t *testing.T) {
	buf := []byte("ab\x00cd\x00")
	v := New(buf, 2)
	assert.Equal(t, 3, cap(v.Terminated()))
	assert.Equal(t, 2, cap(v.Units()))
}

func TestAlwaysOnPanics(t *testing.T) {
	assert.PanicsWithValue(t, "zview: FromPtr: nil pointer", func() { FromPtr[byte](nil) })
	assert.PanicsWithValue(t, "zview: Scan: no terminator in 3 units", func() { Scan([]byte("abc")) })
	assert.Panics(t, func() { Lit("hello") })
	assert.Panics(t, func() { Lit("") })
	assert.Panics(t, func() { U16Lit("a\x00b") })
}

func TestPreconditionPanics(t *testing.T) {
	requireChecked(t)
	v := Lit("hello\x00")

	assert.PanicsWithValue(t, "zview: New: nil buffer", func() { New[byte](nil, 0) })
	assert.PanicsWithValue(t, "zview: New: unit 1 is 0x62, not the terminator", func() { New([]byte("abc"), 1) })
	assert.Panics(t, func() { New([]byte("abc"), 3) })
	assert.Panics(t, func() { New([]byte("abc\x00"), -1) })
	assert.Panics(t, func() { FromTerminated([]uint16{}) })
	assert.Panics(t, func() { FromSlice([]byte{'f', 'u', 'l', 'l'}) })
	assert.PanicsWithValue(t, "zview: RemovePrefix: 6 exceeds size 5", func() { v.RemovePrefix(6) })
	assert.Panics(t, func() { v.RemovePrefix(-1) })
	assert.Panics(t, func() { v.Index(6) })
	assert.Panics(t, func() { ZStringView{}.Front() })
	assert.Panics(t, func() { ZStringView{}.Back() })
	assert.Equal(t, 5, v.Len(), "a rejected RemovePrefix must leave the view unchanged")
}

func BenchmarkFind(b *testing.B) {
	v := Lit("the quick brown fox jumps over the lazy dog\x00")
	needle := strview.FromString("lazy")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = v.Find(needle, 0)
	}
}

func BenchmarkRemovePrefix(b *testing.B) {
	base := Lit("the quick brown fox jumps over the lazy dog\x00")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v := base
		for !v.Empty() {
			v.RemovePrefix(1)
		}
	}
}
