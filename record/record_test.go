// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/record"
)

func makeAccount(t *testing.T) *account.Account {
	seed, err := account.NewBase58EncodedSeed(true)
	require.Nil(t, err)
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err)
	return privateKey.Account()
}

var now = time.Unix(1600000000, 0).UTC()

func TestFileStorage(t *testing.T) {
	owner := makeAccount(t)
	deleted := now.Add(time.Hour)

	f := &record.File{
		Owner:                owner,
		FileHash:             digest.NewDigest([]byte("content")),
		ContentPointer:       "QmPointer",
		Metadata:             `{"k":"v"}`,
		FileSize:             1024,
		ContentType:          "text/plain",
		Description:          "",
		Timestamp:            now,
		IsPublicVerification: true,
		AccessCount:          3,
		DownloadCount:        2,
		IsActive:             false,
		DeletedAt:            &deleted,
		VerificationId:       77,
	}

	decoded, err := record.FileFromPacked(f.Pack())
	require.Nil(t, err)
	assert.True(t, owner.Equal(decoded.Owner), "owner")
	decoded.Owner = owner
	assert.Equal(t, f, decoded)
}

func TestPermissionOptionalFields(t *testing.T) {
	accessor := makeAccount(t)
	owner := makeAccount(t)
	file := digest.NewDigest([]byte("file"))
	expires := now.Add(24 * time.Hour)
	maximum := uint64(0)

	withOptionals := &record.Permission{
		File:         file,
		Accessor:     accessor,
		Rights:       record.ReadRight | record.DownloadRight,
		GrantedAt:    now,
		ExpiresAt:    &expires,
		MaxDownloads: &maximum,
		GrantedBy:    owner,
		IsActive:     true,
	}
	decoded, err := record.PermissionFromPacked(withOptionals.Pack())
	require.Nil(t, err)
	require.NotNil(t, decoded.ExpiresAt)
	assert.Equal(t, expires, *decoded.ExpiresAt)
	require.NotNil(t, decoded.MaxDownloads, "zero cap must survive")
	assert.Equal(t, uint64(0), *decoded.MaxDownloads)
	assert.Nil(t, decoded.RevokedAt)

	without := &record.Permission{
		File:      file,
		Accessor:  accessor,
		Rights:    0,
		GrantedAt: now,
		GrantedBy: owner,
		IsActive:  true,
	}
	decoded, err = record.PermissionFromPacked(without.Pack())
	require.Nil(t, err)
	assert.Nil(t, decoded.ExpiresAt)
	assert.Nil(t, decoded.MaxDownloads)
	assert.Equal(t, record.AccessRights(0), decoded.Rights)
}

func TestCorruptRecords(t *testing.T) {
	a := &record.Account{
		Owner:        makeAccount(t),
		StorageLimit: record.DefaultStorageLimit,
		FileLimit:    record.DefaultFileLimit,
		CreatedAt:    now,
		IsActive:     true,
	}
	packed := a.Pack()

	_, err := record.AccountFromPacked(packed[:len(packed)-1])
	assert.Equal(t, fault.RecordCorrupt, err, "truncated")

	_, err = record.AccountFromPacked(append(packed, 0x00))
	assert.Equal(t, fault.RecordCorrupt, err, "trailing data")

	bad := append(record.Packed{}, packed...)
	bad[0] = 0x09
	_, err = record.AccountFromPacked(bad)
	assert.Equal(t, fault.RecordCorrupt, err, "wrong version")

	_, err = record.FileFromPacked(packed)
	assert.Equal(t, fault.RecordCorrupt, err, "wrong record type")
}

func TestAddresses(t *testing.T) {
	owner := makeAccount(t)
	other := makeAccount(t)
	hash := digest.NewDigest([]byte("data"))

	assert.Equal(t, record.FileAddress(owner, hash), record.FileAddress(owner, hash), "deterministic")
	assert.NotEqual(t, record.FileAddress(owner, hash), record.FileAddress(other, hash), "owner scoped")
	assert.NotEqual(t, record.AccountAddress(owner), record.AccountAddress(other))

	file := record.FileAddress(owner, hash)
	assert.NotEqual(t, record.PermissionAddress(file, owner), record.PermissionAddress(file, other), "accessor scoped")
}

func TestUsable(t *testing.T) {
	expires := now.Add(time.Minute)
	p := &record.Permission{IsActive: true, ExpiresAt: &expires}

	assert.True(t, p.IsUsable(now))
	assert.False(t, p.IsUsable(expires), "expiry instant is exclusive")
	assert.False(t, p.IsUsable(expires.Add(time.Second)))

	p.ExpiresAt = nil
	assert.True(t, p.IsUsable(now.Add(1000*time.Hour)), "no expiry")

	p.IsActive = false
	assert.False(t, p.IsUsable(now), "revoked")
}

func TestRights(t *testing.T) {
	assert.True(t, record.AccessRights(0).Valid())
	assert.True(t, record.AllRights.Valid())
	assert.False(t, record.AccessRights(8).Valid())

	assert.True(t, record.AllRights.Has(record.DownloadRight))
	assert.False(t, record.ReadRight.Has(record.DownloadRight))

	assert.True(t, record.ReadAccess.Valid())
	assert.True(t, record.DownloadAccess.Valid())
	assert.False(t, record.AccessKind(4).Valid(), "share is not recordable")
	assert.Equal(t, record.DownloadRight, record.DownloadAccess.Right())
}
