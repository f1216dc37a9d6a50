// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/record"
)

func TestPoolTags(t *testing.T) {
	tags := poolTags()
	names := make(map[string]string)
	for _, p := range tags {
		names[p.tag] = p.name
	}
	assert.Equal(t, "Files", names["F"], "wrong files pool")
	assert.Equal(t, "Accounts", names["U"], "wrong accounts pool")
	assert.Equal(t, "Permissions", names["P"], "wrong permissions pool")
}

func TestHexDump(t *testing.T) {
	var buffer bytes.Buffer
	hexDump(&buffer, ">", "<", []byte("hello\x00world"))
	assert.True(t, strings.HasPrefix(buffer.String(), ">0000  68 65 6c 6c 6f 00 77 6f 72 6c 64 "), "wrong hex")
	assert.True(t, strings.HasSuffix(buffer.String(), " |hello.world|<\n"), "wrong ascii")
}

func TestDecodeValue(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(true)
	assert.Nil(t, err, "seed error")
	key, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "key error")

	a := &record.Account{
		Owner:        key.Account(),
		StorageLimit: record.DefaultStorageLimit,
		FileLimit:    record.DefaultFileLimit,
		CreatedAt:    time.Unix(1580000000, 0).UTC(),
		IsActive:     true,
	}

	var buffer bytes.Buffer
	ok := decodeValue(&buffer, "U", a.Pack())
	assert.True(t, ok, "account not decoded")
	assert.Contains(t, buffer.String(), `"isActive": true`, "missing field")

	ok = decodeValue(&buffer, "N", []byte{0x01})
	assert.False(t, ok, "counter pool decoded")
}
