// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer safe for concurrent use
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// IncrementBelow - add 1 only while the counter is below limit
//
// returns false and leaves the counter alone once limit is reached
func (ic *Counter) IncrementBelow(limit uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(ic))
		if n >= limit {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), n, n+1) {
			return true
		}
	}
}

// Decrement - subtract 1 from a counter, stops at zero, returns new value
func (ic *Counter) Decrement() uint64 {
	for {
		n := atomic.LoadUint64((*uint64)(ic))
		if 0 == n {
			return 0
		}
		if atomic.CompareAndSwapUint64((*uint64)(ic), n, n-1) {
			return n - 1
		}
	}
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}
