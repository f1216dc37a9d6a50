// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "wrong limit")

	// zero burst with finite rate can never be satisfied
	blocked := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(blocked), "wrong blocked limit")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 10, 100), "wrong valid count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 100), "wrong zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 101, 100), "wrong large count")

	small := rate.NewLimiter(1, 5)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(small, 10, 100), "count above burst")
}
