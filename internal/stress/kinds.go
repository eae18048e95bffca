package stress

import "github.com/hupe1980/atomicbits"

// bitWord is the method set shared by every word type of atomicbits.
type bitWord interface {
	BitLen() int
	GetBit(bit int, ord atomicbits.Ordering) bool
	SetBit(bit int, ord atomicbits.Ordering) bool
	ResetBit(bit int, ord atomicbits.Ordering) bool
	ToggleBit(bit int, ord atomicbits.Ordering) bool
	SwapBit(bit int, v bool, ord atomicbits.Ordering) bool
}

type kind struct {
	name  string
	width atomicbits.Width
	new   func() bitWord
}

var kinds = []kind{
	{"uint8", atomicbits.Width8, func() bitWord { return new(atomicbits.Uint8) }},
	{"int8", atomicbits.Width8, func() bitWord { return new(atomicbits.Int8) }},
	{"uint16", atomicbits.Width16, func() bitWord { return new(atomicbits.Uint16) }},
	{"int16", atomicbits.Width16, func() bitWord { return new(atomicbits.Int16) }},
	{"uint32", atomicbits.Width32, func() bitWord { return new(atomicbits.Uint32) }},
	{"int32", atomicbits.Width32, func() bitWord { return new(atomicbits.Int32) }},
	{"uintptr", atomicbits.WidthPtr, func() bitWord { return new(atomicbits.Uintptr) }},
	{"int", atomicbits.WidthPtr, func() bitWord { return new(atomicbits.Int) }},
}

// kindsOf returns the registered kinds of width w.
func kindsOf(w atomicbits.Width) []kind {
	var out []kind
	for _, k := range kinds {
		if k.width == w {
			out = append(out, k)
		}
	}
	return out
}
