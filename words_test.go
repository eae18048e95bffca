package atomicbits

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrowWords(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		var w Uint8
		assert.Equal(t, uint8(0), w.Load())
		w.Store(0xff)
		assert.Equal(t, uint8(0xff), w.Swap(0x0f))
		assert.False(t, w.CompareAndSwap(0xff, 0))
		assert.True(t, w.CompareAndSwap(0x0f, 0xf0))
		assert.Equal(t, uint8(0xf0), w.Or(0x01))
		assert.Equal(t, uint8(0xf1), w.And(0x0f))
		assert.Equal(t, uint8(0x01), w.Load())
	})

	t.Run("int8 keeps high cell bits clear", func(t *testing.T) {
		w := NewInt8(-1)
		assert.Equal(t, uint32(0xff), w.v.Load())
		assert.Equal(t, int8(-1), w.Swap(-128))
		assert.True(t, w.CompareAndSwap(-128, 127))
		assert.Equal(t, int8(127), w.Load())
		assert.Equal(t, uint32(0x7f), w.v.Load())
	})

	t.Run("uint16", func(t *testing.T) {
		w := NewUint16(0xabcd)
		assert.Equal(t, uint16(0xabcd), w.Swap(1))
		assert.True(t, w.CompareAndSwap(1, 0xffff))
		assert.True(t, w.ResetBit(15, Relaxed))
		assert.Equal(t, uint16(0x7fff), w.Load())
	})

	t.Run("int16 keeps high cell bits clear", func(t *testing.T) {
		w := NewInt16(-2)
		assert.Equal(t, uint32(0xfffe), w.v.Load())
		assert.False(t, w.SetBit(0, Relaxed))
		assert.Equal(t, int16(-1), w.Load())
		assert.Equal(t, uint32(0xffff), w.v.Load())
	})
}

func TestWideWords(t *testing.T) {
	t.Run("uint32", func(t *testing.T) {
		w := NewUint32(5)
		assert.Equal(t, uint32(5), w.Swap(6))
		assert.True(t, w.CompareAndSwap(6, 7))
		assert.Equal(t, uint32(7), w.Or(8))
		assert.Equal(t, uint32(15), w.And(1))
		assert.Equal(t, uint32(1), w.Load())
	})

	t.Run("uintptr", func(t *testing.T) {
		w := NewUintptr(3)
		assert.True(t, w.ToggleBit(1, Relaxed))
		assert.Equal(t, uintptr(1), w.Load())
		assert.Equal(t, uintptr(1), w.Swap(0))
	})

	t.Run("int", func(t *testing.T) {
		w := NewInt(-5)
		assert.Equal(t, -5, w.Load())
		assert.Equal(t, -5, w.Swap(5))
		assert.True(t, w.CompareAndSwap(5, -6))
		assert.Equal(t, -6, w.Or(1))
		assert.Equal(t, -5, w.Load())
	})
}

func TestCheckBit(t *testing.T) {
	assert.NoError(t, CheckBit[uint8](0))
	assert.NoError(t, CheckBit[uint8](7))
	assert.NoError(t, CheckBit[int64](63))

	err := CheckBit[uint8](8)
	assert.ErrorIs(t, err, ErrBitIndexOutOfRange)
	assert.EqualError(t, err, "atomicbits: bit index 8 out of range [0, 8)")

	err = CheckBit[int32](-1)
	var bie *BitIndexError
	assert.ErrorAs(t, err, &bie)
	assert.Equal(t, -1, bie.Bit)
	assert.Equal(t, 32, bie.Len)
}

func TestOrdering(t *testing.T) {
	for _, o := range []Ordering{Relaxed, Acquire, Release, AcqRel, SeqCst} {
		got, ok := ParseOrdering(o.String())
		assert.True(t, ok, o.String())
		assert.Equal(t, o, got)
	}

	got, ok := ParseOrdering("  Acquire-Release ")
	assert.True(t, ok)
	assert.Equal(t, AcqRel, got)

	got, ok = ParseOrdering("seq_cst")
	assert.True(t, ok)
	assert.Equal(t, SeqCst, got)

	_, ok = ParseOrdering("consume")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Ordering(42).String())
}

func TestWidths(t *testing.T) {
	ws := Widths()
	assert.Equal(t, Width8, ws[0])
	assert.Equal(t, WidthPtr, ws[len(ws)-1])
	for _, w := range ws {
		assert.True(t, HasWidth(w))
		got, ok := ParseWidth(w.String())
		assert.True(t, ok)
		assert.Equal(t, w, got)
	}

	assert.Equal(t, 8, Width8.Bits())
	assert.Equal(t, 16, Width16.Bits())
	assert.Equal(t, 32, Width32.Bits())
	assert.Equal(t, 64, Width64.Bits())
	assert.Equal(t, BitLen[uintptr](), WidthPtr.Bits())
	assert.Equal(t, 0, Width(99).Bits())

	_, ok := ParseWidth("128")
	assert.False(t, ok)
}

func TestPadded(t *testing.T) {
	var p Padded[Uint32]
	assert.False(t, p.Word.SetBit(3, Release))
	assert.True(t, p.Word.GetBit(3, Acquire))

	assert.Positive(t, CacheLineSize())
	assert.GreaterOrEqual(t, int(unsafe.Sizeof(p)), 2*CacheLineSize())
	assert.GreaterOrEqual(t, int(unsafe.Offsetof(p.Word)), CacheLineSize())
}

func TestWordMethodsDocumented(t *testing.T) {
	for _, name := range []string{"words.go", "words64.go"} {
		f, err := parser.ParseFile(token.NewFileSet(), name, nil, parser.ParseComments)
		require.NoError(t, err)

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || !fn.Name.IsExported() {
				continue
			}
			assert.NotNil(t, fn.Doc, "%s: %s has no doc comment", name, fn.Name.Name)
		}
	}
}
