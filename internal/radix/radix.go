// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package radix implements a stable least-significant-digit radix sort over
// the three-field edge records the CSR builder works with. It runs in
// O(m·log₁₀(max id)) time and preserves edge identity: when a record moves,
// its endpoint and id fields move together.
package radix

// Record is one (endpoint, endpoint, edge id) triple. Column selects which
// endpoint field SortByColumn keys on.
type Record struct {
	I, J int32
	ID   int32
}

const base = 10

// SortByColumn stably sorts records by the I field if column == 0, or the J
// field if column == 1. Any other column value panics.
//
// The implementation finds the largest key present to bound the number of
// passes, then performs counting sort on each base-10 digit from least to
// most significant. This runs the digit passes unconditionally, even when
// the input happens to already be sorted on the chosen column; detecting
// that in advance would save work but is not attempted here.
func SortByColumn(records []Record, column int) {
	if len(records) == 0 {
		return
	}
	if column != 0 && column != 1 {
		panic("radix: column must be 0 or 1")
	}
	key := func(r Record) int32 {
		if column == 0 {
			return r.I
		}
		return r.J
	}

	largest := key(records[0])
	for _, r := range records[1:] {
		if k := key(r); k > largest {
			largest = k
		}
	}

	src := records
	dst := make([]Record, len(records))
	var count [base + 1]int
	passes := 0

	for digit := int32(1); largest/digit > 0 || digit == 1; digit *= base {
		for i := range count {
			count[i] = 0
		}
		for _, r := range src {
			d := (key(r) / digit) % base
			count[d+1]++
		}
		for i := 1; i <= base; i++ {
			count[i] += count[i-1]
		}
		for _, r := range src {
			d := (key(r) / digit) % base
			dst[count[d]] = r
			count[d]++
		}
		src, dst = dst, src
		passes++
	}

	// An odd number of passes leaves the sorted data in the scratch buffer;
	// copy it back into the caller's slice.
	if passes%2 == 1 {
		copy(records, src)
	}
}
