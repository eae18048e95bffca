//go:build !mips && !mipsle && (!arm || arm.7)

package atomicbits

const has64 = true
