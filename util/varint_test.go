// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{10485760, []byte{0x80, 0x80, 0x80, 0x05}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64Encoding(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: encode", i)

		value, count := util.FromVarint64(append(item.encoded, 0xff, 0x97))
		assert.Equal(t, item.value, value, "%d: decode", i)
		assert.Equal(t, len(item.encoded), count, "%d: count", i)
	}
}

func TestVarint64Truncated(t *testing.T) {
	for i, b := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		value, count := util.FromVarint64(b)
		assert.Equal(t, uint64(0), value, "%d: value", i)
		assert.Equal(t, 0, count, "%d: count", i)
	}
}

func TestClippedVarint64(t *testing.T) {
	value, count := util.ClippedVarint64([]byte{0x80, 0x01}, 1, 200)
	assert.Equal(t, 128, value)
	assert.Equal(t, 2, count)

	_, count = util.ClippedVarint64([]byte{0x80, 0x01}, 1, 100)
	assert.Equal(t, 0, count, "above maximum")

	_, count = util.ClippedVarint64([]byte{0x00}, 1, 100)
	assert.Equal(t, 0, count, "below minimum")

	value, count = util.ClippedVarint64([]byte{0x00}, 0, 100)
	assert.Equal(t, 0, value)
	assert.Equal(t, 1, count, "zero allowed when minimum is zero")

	_, count = util.ClippedVarint64([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0, 8192)
	assert.Equal(t, 0, count, "huge value must not wrap")
}

func TestBase58(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xfe, 0xff}
	s := util.ToBase58(data)
	assert.Equal(t, data, util.FromBase58(s))
	assert.Equal(t, 0, len(util.FromBase58("0OIl")), "invalid characters")
}
