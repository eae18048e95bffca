// Package atomicbits provides bit-level operations on atomic integers.
//
// An atomic integer is treated as a fixed array of independently addressable
// flags. Every operation is one atomic read-modify-write (or one atomic load
// for reads) and reports the value the bit held immediately before it.
//
// # Quick Start
//
//	flags := atomicbits.NewUint8(0b1000)
//
//	prev := flags.SetBit(0, atomicbits.Relaxed)       // false, flags = 0b1001
//	prev = flags.ToggleBit(3, atomicbits.Relaxed)     // true,  flags = 0b0001
//	prev = flags.SwapBit(0, false, atomicbits.Relaxed) // true,  flags = 0b0000
//
// # Decorating sync/atomic values
//
// The operations are generic over Word, which the sync/atomic integer types
// already satisfy:
//
//	var state atomic.Uint32
//	atomicbits.SetBit[uint32](&state, 31, atomicbits.Release)
//	if atomicbits.GetBit[uint32](&state, 31, atomicbits.Acquire) {
//	    // ...
//	}
//
// # Operations
//
//   - GetBit: atomic load, test bit
//   - SetBit: atomic OR
//   - ResetBit: atomic AND NOT
//   - ToggleBit: atomic XOR (compare-and-swap commit)
//   - SwapBit: SetBit or ResetBit depending on the new value
//
// Bit 0 is the least-significant bit. For signed words the sign bit is an
// ordinary addressable bit.
//
// # Widths
//
// Uint8, Int8, Uint16, Int16, Uint32, Int32, Uint64, Int64, Uintptr and Int.
// Uint64 and Int64 are omitted at build time on targets without native
// 64-bit atomics; see Widths.
//
// # Bit Indices
//
// An index outside [0, BitLen) is a programming error. Every operation
// panics with a *BitIndexError before touching the word. Indices from
// untrusted sources should be validated with CheckBit.
package atomicbits
