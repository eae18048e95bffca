// Package stress drives the atomicbits word family concurrently and checks
// every result against a plain reference model.
//
// Architecture:
//   - Each word kind (uint8, int8, ..., int) is exercised in turn
//   - Workers own disjoint bit positions spread across shared words
//   - Every returned previous value is compared with the worker's model
//   - Final word contents are reconciled with roaring bitmaps
//
// Used by:
//   - The atomicbits CLI (cmd/atomicbits)
//   - Concurrency tests of the root package
package stress
