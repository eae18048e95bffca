package atomicbits

import "unsafe"

// Integer is the set of integer types a bit field can be built on.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Word is an atomic integer exposing the primitives the bit operations are
// composed from. Or and And return the value held before the operation.
//
// *atomic.Int32, *atomic.Int64, *atomic.Uint32, *atomic.Uint64 and
// *atomic.Uintptr satisfy Word, as does every word type of this package.
type Word[T Integer] interface {
	Load() T
	Or(mask T) (old T)
	And(mask T) (old T)
	CompareAndSwap(old, new T) (swapped bool)
}

// BitLen returns the number of addressable bits of T.
func BitLen[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

// mask returns the single-bit mask for bit in T's own width.
// It panics with *BitIndexError if bit is outside [0, BitLen[T]()).
func mask[T Integer](bit int) T {
	if n := BitLen[T](); bit < 0 || bit >= n {
		panic(&BitIndexError{Bit: bit, Len: n})
	}
	// For signed T this is the bit pattern; 1<<(n-1) is the sign bit.
	return T(1) << uint(bit)
}

// GetBit atomically loads w and reports whether bit is set.
//
// It panics if bit is outside [0, BitLen[T]()).
func GetBit[T Integer, W Word[T]](w W, bit int, _ Ordering) bool {
	m := mask[T](bit)
	return w.Load()&m != 0
}

// SetBit atomically sets bit and returns its previous value.
//
// It panics if bit is outside [0, BitLen[T]()).
func SetBit[T Integer, W Word[T]](w W, bit int, _ Ordering) bool {
	m := mask[T](bit)
	return w.Or(m)&m != 0
}

// ResetBit atomically clears bit and returns its previous value.
//
// It panics if bit is outside [0, BitLen[T]()).
func ResetBit[T Integer, W Word[T]](w W, bit int, _ Ordering) bool {
	m := mask[T](bit)
	return w.And(^m)&m != 0
}

// ToggleBit atomically flips bit and returns its previous value.
//
// sync/atomic has no XOR, so the flip is committed with compare-and-swap:
// the value tested is the value replaced, which keeps the transition a
// single indivisible step.
//
// It panics if bit is outside [0, BitLen[T]()).
func ToggleBit[T Integer, W Word[T]](w W, bit int, _ Ordering) bool {
	m := mask[T](bit)
	for {
		old := w.Load()
		if w.CompareAndSwap(old, old^m) {
			return old&m != 0
		}
	}
}

// SwapBit atomically assigns v to bit and returns its previous value.
//
// It panics if bit is outside [0, BitLen[T]()).
func SwapBit[T Integer, W Word[T]](w W, bit int, v bool, ord Ordering) bool {
	if v {
		return SetBit[T](w, bit, ord)
	}
	return ResetBit[T](w, bit, ord)
}
