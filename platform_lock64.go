//go:build mips || mipsle || (arm && !arm.7)

package atomicbits

// The runtime backs 64-bit atomics with a spin lock here: mips and mipsle
// always, arm below GOARM=7 (no LDREXD/STREXD).
const has64 = false
