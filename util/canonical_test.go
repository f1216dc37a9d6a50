// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/util"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234"},
		{" 127.0.0.1:1 ", "127.0.0.1:1"},
		{"0.0.0.0:65535", "0.0.0.0:65535"},
		{"[::1]:1234", "[::1]:1234"},
		{"[0:0::0:0]:1234", "[::]:1234"},
	}

	for i, test := range tests {
		c, err := util.CanonicalIPandPort("", test.in)
		assert.Nil(t, err, "%d: %q", i, test.in)
		assert.Equal(t, test.expected, c, "%d", i)
	}

	c, err := util.CanonicalIPandPort("tcp://", "[::1]:5566")
	assert.Nil(t, err)
	assert.Equal(t, "tcp://[::1]:5566", c)
	assert.True(t, util.IsIPv6(c))
	assert.False(t, util.IsIPv6("tcp://127.0.0.1:5566"))
}

func TestCanonicalErrors(t *testing.T) {
	badIP := []string{
		"127.1:1234",
		"256.0.0.0:1234",
		"[as34::]:1234",
		"*:1234",
		"no-port",
	}
	for i, d := range badIP {
		_, err := util.CanonicalIPandPort("", d)
		assert.Equal(t, fault.InvalidIpAddress, err, "%d: %q", i, d)
	}

	badPort := []string{
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"127.0.0.1:-1",
		"127.0.0.1:http",
	}
	for i, d := range badPort {
		_, err := util.CanonicalIPandPort("", d)
		assert.Equal(t, fault.InvalidPortNumber, err, "%d: %q", i, d)
	}
}
