//go:build !mips && !mipsle && (!arm || arm.7)

package atomicbits

import "sync/atomic"

// Uint64 is an atomic uint64.
//
// Not built on mips, mipsle and arm below GOARM=7, where the runtime
// implements 64-bit atomics with a spin lock.
type Uint64 struct {
	v atomic.Uint64
}

// NewUint64 returns a Uint64 holding v.
func NewUint64(v uint64) *Uint64 {
	x := &Uint64{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Uint64) Load() uint64 { return x.v.Load() }

// Store atomically stores v into x.
func (x *Uint64) Store(v uint64) { x.v.Store(v) }

// Swap atomically stores v into x and returns the previous value.
func (x *Uint64) Swap(v uint64) uint64 { return x.v.Swap(v) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Uint64) CompareAndSwap(old, new uint64) bool { return x.v.CompareAndSwap(old, new) }

// Or atomically ORs mask into x and returns the previous value.
func (x *Uint64) Or(mask uint64) uint64 { return x.v.Or(mask) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Uint64) And(mask uint64) uint64 { return x.v.And(mask) }

// BitLen returns 64.
func (x *Uint64) BitLen() int { return BitLen[uint64]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Uint64) GetBit(bit int, ord Ordering) bool { return GetBit[uint64](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Uint64) SetBit(bit int, ord Ordering) bool { return SetBit[uint64](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Uint64) ResetBit(bit int, ord Ordering) bool { return ResetBit[uint64](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Uint64) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[uint64](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Uint64) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[uint64](x, bit, v, ord)
}

// Int64 is an atomic int64. Bit 63 is the sign bit.
type Int64 struct {
	v atomic.Int64
}

// NewInt64 returns an Int64 holding v.
func NewInt64(v int64) *Int64 {
	x := &Int64{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Int64) Load() int64 { return x.v.Load() }

// Store atomically stores v into x.
func (x *Int64) Store(v int64) { x.v.Store(v) }

// Swap atomically stores v into x and returns the previous value.
func (x *Int64) Swap(v int64) int64 { return x.v.Swap(v) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Int64) CompareAndSwap(old, new int64) bool { return x.v.CompareAndSwap(old, new) }

// Or atomically ORs mask into x and returns the previous value.
func (x *Int64) Or(mask int64) int64 { return x.v.Or(mask) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Int64) And(mask int64) int64 { return x.v.And(mask) }

// BitLen returns 64.
func (x *Int64) BitLen() int { return BitLen[int64]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Int64) GetBit(bit int, ord Ordering) bool { return GetBit[int64](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Int64) SetBit(bit int, ord Ordering) bool { return SetBit[int64](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Int64) ResetBit(bit int, ord Ordering) bool { return ResetBit[int64](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Int64) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[int64](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Int64) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[int64](x, bit, v, ord)
}
