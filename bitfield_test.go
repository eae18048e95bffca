package atomicbits

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/atomicbits/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkLaws verifies every operation on every bit of words built by newWord
// against a plain integer computation.
func checkLaws[T Integer, W Word[T]](t *testing.T, newWord func(T) W) {
	t.Helper()

	n := BitLen[T]()
	for _, seed := range testutil.Words[T](testutil.NewRNG(7), 8) {
		for bit := 0; bit < n; bit++ {
			m := T(1) << bit
			ref := seed&m != 0

			w := newWord(seed)
			assert.Equal(t, ref, GetBit[T](w, bit, Acquire), "get seed=%b bit=%d", seed, bit)
			assert.Equal(t, seed, w.Load(), "get must not mutate")

			// get after set, non-interference, set/swap round trip
			prev := SetBit[T](w, bit, SeqCst)
			assert.Equal(t, ref, prev, "set prev seed=%b bit=%d", seed, bit)
			assert.True(t, GetBit[T](w, bit, Acquire))
			assert.Equal(t, seed|m, w.Load())
			assert.True(t, SwapBit[T](w, bit, prev, AcqRel))
			assert.Equal(t, seed, w.Load())

			// get after reset
			prev = ResetBit[T](w, bit, Release)
			assert.Equal(t, ref, prev, "reset prev seed=%b bit=%d", seed, bit)
			assert.False(t, GetBit[T](w, bit, Acquire))
			assert.Equal(t, seed&^m, w.Load())
			assert.False(t, SwapBit[T](w, bit, prev, AcqRel))
			assert.Equal(t, seed, w.Load())

			// toggle involution
			assert.Equal(t, ref, ToggleBit[T](w, bit, Relaxed))
			assert.Equal(t, seed^m, w.Load())
			assert.Equal(t, !ref, ToggleBit[T](w, bit, Relaxed))
			assert.Equal(t, seed, w.Load())
		}
	}
}

// checkOutOfRange verifies that every operation panics on an invalid index
// and leaves the word untouched.
func checkOutOfRange[T Integer, W Word[T]](t *testing.T, newWord func(T) W) {
	t.Helper()

	n := BitLen[T]()
	seed := T(0b1010)
	for _, bit := range []int{n, n + 1, 2 * n, -1} {
		w := newWord(seed)
		want := (&BitIndexError{Bit: bit, Len: n}).Error()

		assert.PanicsWithError(t, want, func() { GetBit[T](w, bit, Relaxed) })
		assert.PanicsWithError(t, want, func() { SetBit[T](w, bit, Relaxed) })
		assert.PanicsWithError(t, want, func() { ResetBit[T](w, bit, Relaxed) })
		assert.PanicsWithError(t, want, func() { ToggleBit[T](w, bit, Relaxed) })
		assert.PanicsWithError(t, want, func() { SwapBit[T](w, bit, true, Relaxed) })
		assert.PanicsWithError(t, want, func() { SwapBit[T](w, bit, false, Relaxed) })
		assert.Equal(t, seed, w.Load(), "word modified by bit %d", bit)
	}
}

func newAtomicUint32(v uint32) *atomic.Uint32 {
	w := new(atomic.Uint32)
	w.Store(v)
	return w
}

func newAtomicInt32(v int32) *atomic.Int32 {
	w := new(atomic.Int32)
	w.Store(v)
	return w
}

func newAtomicUintptr(v uintptr) *atomic.Uintptr {
	w := new(atomic.Uintptr)
	w.Store(v)
	return w
}

func TestBitFieldLaws(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { checkLaws(t, NewUint8) })
	t.Run("int8", func(t *testing.T) { checkLaws(t, NewInt8) })
	t.Run("uint16", func(t *testing.T) { checkLaws(t, NewUint16) })
	t.Run("int16", func(t *testing.T) { checkLaws(t, NewInt16) })
	t.Run("uint32", func(t *testing.T) { checkLaws(t, NewUint32) })
	t.Run("int32", func(t *testing.T) { checkLaws(t, NewInt32) })
	t.Run("uintptr", func(t *testing.T) { checkLaws(t, NewUintptr) })
	t.Run("int", func(t *testing.T) { checkLaws(t, NewInt) })

	t.Run("sync/atomic.Uint32", func(t *testing.T) { checkLaws(t, newAtomicUint32) })
	t.Run("sync/atomic.Int32", func(t *testing.T) { checkLaws(t, newAtomicInt32) })
	t.Run("sync/atomic.Uintptr", func(t *testing.T) { checkLaws(t, newAtomicUintptr) })
}

func TestOutOfRange(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { checkOutOfRange(t, NewUint8) })
	t.Run("int8", func(t *testing.T) { checkOutOfRange(t, NewInt8) })
	t.Run("uint16", func(t *testing.T) { checkOutOfRange(t, NewUint16) })
	t.Run("int16", func(t *testing.T) { checkOutOfRange(t, NewInt16) })
	t.Run("uint32", func(t *testing.T) { checkOutOfRange(t, NewUint32) })
	t.Run("int32", func(t *testing.T) { checkOutOfRange(t, NewInt32) })
	t.Run("uintptr", func(t *testing.T) { checkOutOfRange(t, NewUintptr) })
	t.Run("int", func(t *testing.T) { checkOutOfRange(t, NewInt) })
	t.Run("sync/atomic.Uint32", func(t *testing.T) { checkOutOfRange(t, newAtomicUint32) })

	t.Run("panic value", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok, "panic value %T is not an error", r)
			assert.ErrorIs(t, err, ErrBitIndexOutOfRange)

			var bie *BitIndexError
			require.ErrorAs(t, err, &bie)
			assert.Equal(t, 8, bie.Bit)
			assert.Equal(t, 8, bie.Len)
		}()
		NewUint8(0).SetBit(8, Relaxed)
	})
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 8, BitLen[uint8]())
	assert.Equal(t, 8, BitLen[int8]())
	assert.Equal(t, 16, BitLen[uint16]())
	assert.Equal(t, 16, BitLen[int16]())
	assert.Equal(t, 32, BitLen[uint32]())
	assert.Equal(t, 32, BitLen[int32]())
	assert.Equal(t, 64, BitLen[uint64]())
	assert.Equal(t, 64, BitLen[int64]())
	assert.Equal(t, strconv.IntSize, BitLen[uintptr]())
	assert.Equal(t, BitLen[uintptr](), BitLen[int]())

	assert.Equal(t, 8, new(Uint8).BitLen())
	assert.Equal(t, 8, new(Int8).BitLen())
	assert.Equal(t, 16, new(Uint16).BitLen())
	assert.Equal(t, 16, new(Int16).BitLen())
	assert.Equal(t, 32, new(Uint32).BitLen())
	assert.Equal(t, 32, new(Int32).BitLen())
	assert.Equal(t, BitLen[uintptr](), new(Uintptr).BitLen())
	assert.Equal(t, BitLen[uintptr](), new(Int).BitLen())
}

func TestScenario(t *testing.T) {
	flags := NewUint8(0b1000)

	assert.False(t, flags.SetBit(0, Relaxed))
	assert.Equal(t, uint8(0b1001), flags.Load())

	assert.True(t, flags.ToggleBit(3, Relaxed))
	assert.Equal(t, uint8(0b0001), flags.Load())

	assert.True(t, flags.SwapBit(0, false, Relaxed))
	assert.Equal(t, uint8(0b0000), flags.Load())
}

func TestSignBit(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		w := NewInt8(0)
		assert.False(t, w.SetBit(7, SeqCst))
		assert.Equal(t, int8(-128), w.Load())
		assert.True(t, w.GetBit(7, SeqCst))
		assert.True(t, w.ResetBit(7, SeqCst))
		assert.Equal(t, int8(0), w.Load())
	})

	t.Run("int16", func(t *testing.T) {
		w := NewInt16(-1)
		assert.True(t, w.ToggleBit(15, SeqCst))
		assert.Equal(t, int16(0x7fff), w.Load())
	})

	t.Run("int32", func(t *testing.T) {
		w := NewInt32(1)
		assert.False(t, w.SwapBit(31, true, SeqCst))
		assert.Equal(t, int32(-2147483647), w.Load())
	})

	t.Run("int", func(t *testing.T) {
		w := NewInt(-1)
		top := w.BitLen() - 1
		assert.True(t, w.ResetBit(top, SeqCst))
		assert.Greater(t, w.Load(), 0)
	})
}

func TestConcurrentDisjointBits(t *testing.T) {
	var w Uint32
	var wg sync.WaitGroup

	for bit := range w.BitLen() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				w.ToggleBit(bit, AcqRel)
			}
			w.SetBit(bit, Release)
		}()
	}
	wg.Wait()

	assert.Equal(t, ^uint32(0), w.Load())
}

func TestConcurrentSameBit(t *testing.T) {
	var w Uint8
	var winners atomic.Int32
	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !w.SetBit(5, SeqCst) {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load(), "exactly one setter observes the bit clear")
	assert.Equal(t, uint8(1<<5), w.Load())
}
