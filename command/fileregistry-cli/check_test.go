// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/record"
)

func TestCheckRights(t *testing.T) {
	items := []struct {
		s      string
		rights record.AccessRights
		err    error
	}{
		{"read", record.ReadRight, nil},
		{"read,download", record.ReadRight | record.DownloadRight, nil},
		{"Share, read", record.ShareRight | record.ReadRight, nil},
		{"all", record.AllRights, nil},
		{"3", record.ReadRight | record.DownloadRight, nil},
		{"8", 0, fault.InvalidPermissions},
		{"write", 0, fault.InvalidPermissions},
	}

	for i, item := range items {
		rights, err := checkRights(item.s)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.rights, rights, "%d: wrong rights", i)
	}
}

func TestCheckKind(t *testing.T) {
	kind, err := checkKind("Download")
	assert.Nil(t, err, "download rejected")
	assert.Equal(t, record.DownloadAccess, kind, "wrong kind")

	_, err = checkKind("share")
	assert.Equal(t, fault.AccessKindUnsupportedForShare, err, "share accepted")

	_, err = checkKind("write")
	assert.Equal(t, fault.InvalidAccessKind, err, "unknown kind accepted")
}

func TestCheckExpiry(t *testing.T) {
	now := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	expires, err := checkExpiry("", now)
	assert.Nil(t, err, "blank rejected")
	assert.Nil(t, expires, "blank expires")

	expires, err = checkExpiry("48h", now)
	assert.Nil(t, err, "duration rejected")
	assert.Equal(t, now.Add(48*time.Hour), *expires, "wrong duration expiry")

	expires, err = checkExpiry("2021-01-01T00:00:00Z", now)
	assert.Nil(t, err, "time rejected")
	assert.Equal(t, 2021, expires.Year(), "wrong year")

	_, err = checkExpiry("2019-01-01T00:00:00Z", now)
	assert.Equal(t, fault.InvalidExpiration, err, "past time accepted")

	_, err = checkExpiry("-1h", now)
	assert.Equal(t, fault.InvalidExpiration, err, "negative duration accepted")
}

func TestCheckSeed(t *testing.T) {
	seed, err := checkSeed("", true, true)
	assert.Nil(t, err, "new seed error")

	private, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "generated seed invalid")
	assert.True(t, private.IsTesting(), "not a testnet seed")

	_, err = checkSeed(seed, false, false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "testnet seed on live")

	_, err = checkSeed(seed, true, true)
	assert.Equal(t, fault.IncompatibleOptions, err, "seed and new accepted")

	_, err = checkSeed("", false, true)
	assert.Equal(t, fault.MissingParameters, err, "no seed accepted")
}
