//go:build !mips && !mipsle && (!arm || arm.7)

package stress

import "github.com/hupe1980/atomicbits"

func init() {
	kinds = append(kinds,
		kind{"uint64", atomicbits.Width64, func() bitWord { return new(atomicbits.Uint64) }},
		kind{"int64", atomicbits.Width64, func() bitWord { return new(atomicbits.Int64) }},
	)
}
