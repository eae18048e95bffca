package atomicbits

import (
	"strings"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Width identifies a member of the atomic word family.
type Width uint8

const (
	// Width8 covers Uint8 and Int8.
	Width8 Width = iota
	// Width16 covers Uint16 and Int16.
	Width16
	// Width32 covers Uint32 and Int32.
	Width32
	// Width64 covers Uint64 and Int64.
	Width64
	// WidthPtr covers Uintptr and Int.
	WidthPtr
)

// String returns the string representation of a Width.
func (w Width) String() string {
	switch w {
	case Width8:
		return "8"
	case Width16:
		return "16"
	case Width32:
		return "32"
	case Width64:
		return "64"
	case WidthPtr:
		return "ptr"
	default:
		return "unknown"
	}
}

// Bits returns the number of addressable bits of words of this width.
func (w Width) Bits() int {
	switch w {
	case Width8:
		return BitLen[uint8]()
	case Width16:
		return BitLen[uint16]()
	case Width32:
		return BitLen[uint32]()
	case Width64:
		return BitLen[uint64]()
	case WidthPtr:
		return BitLen[uintptr]()
	default:
		return 0
	}
}

// ParseWidth parses a string into a Width value.
func ParseWidth(s string) (Width, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "8":
		return Width8, true
	case "16":
		return Width16, true
	case "32":
		return Width32, true
	case "64":
		return Width64, true
	case "ptr", "uintptr", "size":
		return WidthPtr, true
	default:
		return Width8, false
	}
}

// Widths returns the widths built for the current target in ascending order.
//
// Availability is fixed at build time: Width64 is absent on targets whose
// 64-bit atomics are not native instructions.
func Widths() []Width {
	ws := []Width{Width8, Width16, Width32}
	if has64 {
		ws = append(ws, Width64)
	}
	return append(ws, WidthPtr)
}

// HasWidth reports whether words of width w are built for the current target.
func HasWidth(w Width) bool {
	for _, x := range Widths() {
		if x == w {
			return true
		}
	}
	return false
}

// CacheLineSize returns the cache line size assumed for the current target.
func CacheLineSize() int {
	return int(unsafe.Sizeof(cpu.CacheLinePad{}))
}

// Padded places a word on cache lines of its own.
//
// Flag words hit by many goroutines otherwise share lines with neighbouring
// data and every RMW invalidates them.
//
//	var ready atomicbits.Padded[atomicbits.Uint32]
//	ready.Word.SetBit(3, atomicbits.Release)
type Padded[T any] struct {
	_    cpu.CacheLinePad
	Word T
	_    cpu.CacheLinePad
}
