// SPDX-License-Identifier: EPL-2.0

// Package convert implements the sample conversion matrix between the six
// formats defined in package pcm.
//
// Every ordered pair of formats has a routine, 36 in total; the six
// same-format pairs are plain byte copies. A routine is selected once with
// Lookup and then called for every read, so the per-sample loop does not
// branch on the formats involved.
//
// # Integer conversions
//
// Integers are widened by placing the value in the most significant bytes of
// the wider type (unsigned 8-bit is first re-centred on zero). Narrowing keeps
// the most significant bytes and drops the rest without dithering:
//
//	u8  0x00 -> s16 -32768
//	u8  0x80 -> s16 0
//	u8  0xff -> s16 32512
//
// # Float conversions
//
// Integer to float divides by 2^(bits-1). Float to integer multiplies by
// 2^(bits-1) - 0.5 after clamping to [-1, 1], so +1.0 becomes the largest
// positive integer rather than overflowing.
//
// # Partial samples
//
// A read buffer does not have to end on a sample boundary. Func accepts a
// truncated leading sample (head) and trailing sample (tail); the affected
// sample is converted in full and only the requested bytes are copied out,
// which lets one output sample be split across two calls:
//
//	fn, _ := convert.Lookup(pcm.U8, pcm.S16)
//	out := make([]byte, 2)
//	fn(out[:1], src, 0, 0, 0, 1) // first byte of sample 0
//	fn(out[1:], src, 0, 1, 1, 0) // second byte of sample 0
package convert
