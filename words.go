package atomicbits

import "sync/atomic"

// The word types below mirror the sync/atomic types: the zero value is
// ready to use and a word must not be copied after first use. Each type
// satisfies Word for its own integer type, so its bit methods are the
// generic operations in bitfield.go instantiated for that width.
//
// Go has no 8- or 16-bit atomics. Uint8, Int8, Uint16 and Int16 keep their
// bit pattern in the low bits of an atomic.Uint32 whose high bits are always
// zero; every operation is a 32-bit atomic instruction on that cell.

// Uint8 is an atomic uint8.
type Uint8 struct {
	v atomic.Uint32
}

// NewUint8 returns a Uint8 holding v.
func NewUint8(v uint8) *Uint8 {
	x := &Uint8{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Uint8) Load() uint8 { return uint8(x.v.Load()) }

// Store atomically stores v into x.
func (x *Uint8) Store(v uint8) { x.v.Store(uint32(v)) }

// Swap atomically stores v into x and returns the previous value.
func (x *Uint8) Swap(v uint8) uint8 { return uint8(x.v.Swap(uint32(v))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Uint8) CompareAndSwap(old, new uint8) bool {
	return x.v.CompareAndSwap(uint32(old), uint32(new))
}

// Or atomically ORs mask into x and returns the previous value.
func (x *Uint8) Or(mask uint8) uint8 { return uint8(x.v.Or(uint32(mask))) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Uint8) And(mask uint8) uint8 { return uint8(x.v.And(uint32(mask))) }

// BitLen returns 8.
func (x *Uint8) BitLen() int { return BitLen[uint8]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Uint8) GetBit(bit int, ord Ordering) bool { return GetBit[uint8](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Uint8) SetBit(bit int, ord Ordering) bool { return SetBit[uint8](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Uint8) ResetBit(bit int, ord Ordering) bool { return ResetBit[uint8](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Uint8) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[uint8](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Uint8) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[uint8](x, bit, v, ord)
}

// Int8 is an atomic int8. Bit 7 is the sign bit.
type Int8 struct {
	v atomic.Uint32
}

// NewInt8 returns an Int8 holding v.
func NewInt8(v int8) *Int8 {
	x := &Int8{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Int8) Load() int8 { return int8(x.v.Load()) }

// Store atomically stores v into x.
func (x *Int8) Store(v int8) { x.v.Store(uint32(uint8(v))) }

// Swap atomically stores v into x and returns the previous value.
func (x *Int8) Swap(v int8) int8 { return int8(x.v.Swap(uint32(uint8(v)))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Int8) CompareAndSwap(old, new int8) bool {
	return x.v.CompareAndSwap(uint32(uint8(old)), uint32(uint8(new)))
}

// Or atomically ORs mask into x and returns the previous value.
func (x *Int8) Or(mask int8) int8 { return int8(x.v.Or(uint32(uint8(mask)))) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Int8) And(mask int8) int8 { return int8(x.v.And(uint32(uint8(mask)))) }

// BitLen returns 8.
func (x *Int8) BitLen() int { return BitLen[int8]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Int8) GetBit(bit int, ord Ordering) bool { return GetBit[int8](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Int8) SetBit(bit int, ord Ordering) bool { return SetBit[int8](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Int8) ResetBit(bit int, ord Ordering) bool { return ResetBit[int8](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Int8) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[int8](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Int8) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[int8](x, bit, v, ord)
}

// Uint16 is an atomic uint16.
type Uint16 struct {
	v atomic.Uint32
}

// NewUint16 returns a Uint16 holding v.
func NewUint16(v uint16) *Uint16 {
	x := &Uint16{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Uint16) Load() uint16 { return uint16(x.v.Load()) }

// Store atomically stores v into x.
func (x *Uint16) Store(v uint16) { x.v.Store(uint32(v)) }

// Swap atomically stores v into x and returns the previous value.
func (x *Uint16) Swap(v uint16) uint16 { return uint16(x.v.Swap(uint32(v))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Uint16) CompareAndSwap(old, new uint16) bool {
	return x.v.CompareAndSwap(uint32(old), uint32(new))
}

// Or atomically ORs mask into x and returns the previous value.
func (x *Uint16) Or(mask uint16) uint16 { return uint16(x.v.Or(uint32(mask))) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Uint16) And(mask uint16) uint16 { return uint16(x.v.And(uint32(mask))) }

// BitLen returns 16.
func (x *Uint16) BitLen() int { return BitLen[uint16]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Uint16) GetBit(bit int, ord Ordering) bool { return GetBit[uint16](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Uint16) SetBit(bit int, ord Ordering) bool { return SetBit[uint16](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Uint16) ResetBit(bit int, ord Ordering) bool { return ResetBit[uint16](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Uint16) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[uint16](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Uint16) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[uint16](x, bit, v, ord)
}

// Int16 is an atomic int16. Bit 15 is the sign bit.
type Int16 struct {
	v atomic.Uint32
}

// NewInt16 returns an Int16 holding v.
func NewInt16(v int16) *Int16 {
	x := &Int16{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Int16) Load() int16 { return int16(x.v.Load()) }

// Store atomically stores v into x.
func (x *Int16) Store(v int16) { x.v.Store(uint32(uint16(v))) }

// Swap atomically stores v into x and returns the previous value.
func (x *Int16) Swap(v int16) int16 { return int16(x.v.Swap(uint32(uint16(v)))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Int16) CompareAndSwap(old, new int16) bool {
	return x.v.CompareAndSwap(uint32(uint16(old)), uint32(uint16(new)))
}

// Or atomically ORs mask into x and returns the previous value.
func (x *Int16) Or(mask int16) int16 { return int16(x.v.Or(uint32(uint16(mask)))) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Int16) And(mask int16) int16 { return int16(x.v.And(uint32(uint16(mask)))) }

// BitLen returns 16.
func (x *Int16) BitLen() int { return BitLen[int16]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Int16) GetBit(bit int, ord Ordering) bool { return GetBit[int16](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Int16) SetBit(bit int, ord Ordering) bool { return SetBit[int16](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Int16) ResetBit(bit int, ord Ordering) bool { return ResetBit[int16](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Int16) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[int16](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Int16) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[int16](x, bit, v, ord)
}

// Uint32 is an atomic uint32.
type Uint32 struct {
	v atomic.Uint32
}

// NewUint32 returns a Uint32 holding v.
func NewUint32(v uint32) *Uint32 {
	x := &Uint32{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Uint32) Load() uint32 { return x.v.Load() }

// Store atomically stores v into x.
func (x *Uint32) Store(v uint32) { x.v.Store(v) }

// Swap atomically stores v into x and returns the previous value.
func (x *Uint32) Swap(v uint32) uint32 { return x.v.Swap(v) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Uint32) CompareAndSwap(old, new uint32) bool { return x.v.CompareAndSwap(old, new) }

// Or atomically ORs mask into x and returns the previous value.
func (x *Uint32) Or(mask uint32) uint32 { return x.v.Or(mask) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Uint32) And(mask uint32) uint32 { return x.v.And(mask) }

// BitLen returns 32.
func (x *Uint32) BitLen() int { return BitLen[uint32]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Uint32) GetBit(bit int, ord Ordering) bool { return GetBit[uint32](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Uint32) SetBit(bit int, ord Ordering) bool { return SetBit[uint32](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Uint32) ResetBit(bit int, ord Ordering) bool { return ResetBit[uint32](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Uint32) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[uint32](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Uint32) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[uint32](x, bit, v, ord)
}

// Int32 is an atomic int32. Bit 31 is the sign bit.
type Int32 struct {
	v atomic.Int32
}

// NewInt32 returns an Int32 holding v.
func NewInt32(v int32) *Int32 {
	x := &Int32{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Int32) Load() int32 { return x.v.Load() }

// Store atomically stores v into x.
func (x *Int32) Store(v int32) { x.v.Store(v) }

// Swap atomically stores v into x and returns the previous value.
func (x *Int32) Swap(v int32) int32 { return x.v.Swap(v) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Int32) CompareAndSwap(old, new int32) bool { return x.v.CompareAndSwap(old, new) }

// Or atomically ORs mask into x and returns the previous value.
func (x *Int32) Or(mask int32) int32 { return x.v.Or(mask) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Int32) And(mask int32) int32 { return x.v.And(mask) }

// BitLen returns 32.
func (x *Int32) BitLen() int { return BitLen[int32]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Int32) GetBit(bit int, ord Ordering) bool { return GetBit[int32](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Int32) SetBit(bit int, ord Ordering) bool { return SetBit[int32](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Int32) ResetBit(bit int, ord Ordering) bool { return ResetBit[int32](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Int32) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[int32](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Int32) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[int32](x, bit, v, ord)
}

// Uintptr is an atomic uintptr.
type Uintptr struct {
	v atomic.Uintptr
}

// NewUintptr returns a Uintptr holding v.
func NewUintptr(v uintptr) *Uintptr {
	x := &Uintptr{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Uintptr) Load() uintptr { return x.v.Load() }

// Store atomically stores v into x.
func (x *Uintptr) Store(v uintptr) { x.v.Store(v) }

// Swap atomically stores v into x and returns the previous value.
func (x *Uintptr) Swap(v uintptr) uintptr { return x.v.Swap(v) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Uintptr) CompareAndSwap(old, new uintptr) bool { return x.v.CompareAndSwap(old, new) }

// Or atomically ORs mask into x and returns the previous value.
func (x *Uintptr) Or(mask uintptr) uintptr { return x.v.Or(mask) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Uintptr) And(mask uintptr) uintptr { return x.v.And(mask) }

// BitLen returns the size of a pointer in bits.
func (x *Uintptr) BitLen() int { return BitLen[uintptr]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Uintptr) GetBit(bit int, ord Ordering) bool { return GetBit[uintptr](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Uintptr) SetBit(bit int, ord Ordering) bool { return SetBit[uintptr](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Uintptr) ResetBit(bit int, ord Ordering) bool { return ResetBit[uintptr](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Uintptr) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[uintptr](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Uintptr) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[uintptr](x, bit, v, ord)
}

// Int is an atomic pointer-sized signed integer.
//
// sync/atomic has no signed pointer-sized type, so the two's-complement
// pattern is kept in an atomic.Uintptr of the same size.
type Int struct {
	v atomic.Uintptr
}

// NewInt returns an Int holding v.
func NewInt(v int) *Int {
	x := &Int{}
	x.Store(v)
	return x
}

// Load atomically loads x.
func (x *Int) Load() int { return int(x.v.Load()) }

// Store atomically stores v into x.
func (x *Int) Store(v int) { x.v.Store(uintptr(v)) }

// Swap atomically stores v into x and returns the previous value.
func (x *Int) Swap(v int) int { return int(x.v.Swap(uintptr(v))) }

// CompareAndSwap executes the compare-and-swap operation for x.
func (x *Int) CompareAndSwap(old, new int) bool {
	return x.v.CompareAndSwap(uintptr(old), uintptr(new))
}

// Or atomically ORs mask into x and returns the previous value.
func (x *Int) Or(mask int) int { return int(x.v.Or(uintptr(mask))) }

// And atomically ANDs mask into x and returns the previous value.
func (x *Int) And(mask int) int { return int(x.v.And(uintptr(mask))) }

// BitLen returns the size of a pointer in bits.
func (x *Int) BitLen() int { return BitLen[int]() }

// GetBit reports whether bit is set. See GetBit.
func (x *Int) GetBit(bit int, ord Ordering) bool { return GetBit[int](x, bit, ord) }

// SetBit sets bit and returns its previous value. See SetBit.
func (x *Int) SetBit(bit int, ord Ordering) bool { return SetBit[int](x, bit, ord) }

// ResetBit clears bit and returns its previous value. See ResetBit.
func (x *Int) ResetBit(bit int, ord Ordering) bool { return ResetBit[int](x, bit, ord) }

// ToggleBit flips bit and returns its previous value. See ToggleBit.
func (x *Int) ToggleBit(bit int, ord Ordering) bool { return ToggleBit[int](x, bit, ord) }

// SwapBit assigns v to bit and returns its previous value. See SwapBit.
func (x *Int) SwapBit(bit int, v bool, ord Ordering) bool {
	return SwapBit[int](x, bit, v, ord)
}
