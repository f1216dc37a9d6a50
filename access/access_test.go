// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/access"
	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/record"
)

var now = time.Unix(1600000000, 0).UTC()

func makeAccount(t *testing.T) *account.Account {
	seed, err := account.NewBase58EncodedSeed(true)
	require.Nil(t, err)
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err)
	return privateKey.Account()
}

type fixture struct {
	owner    *account.Account
	accessor *account.Account
	file     *record.File
	address  digest.Digest
}

func setup(t *testing.T) *fixture {
	owner := makeAccount(t)
	hash := digest.NewDigest([]byte("content"))
	return &fixture{
		owner:    owner,
		accessor: makeAccount(t),
		file: &record.File{
			Owner:    owner,
			FileHash: hash,
			FileSize: 10,
			IsActive: true,
		},
		address: record.FileAddress(owner, hash),
	}
}

func (f *fixture) grant(t *testing.T, rights record.AccessRights, expires *time.Time, maximum *uint64) *record.Permission {
	g := &instruction.GrantAccess{
		Owner:        f.owner,
		File:         f.address,
		Accessor:     f.accessor,
		Permissions:  rights,
		ExpiresAt:    expires,
		MaxDownloads: maximum,
	}
	p, err := access.Grant(f.file, f.address, nil, g, now)
	require.Nil(t, err)
	return p
}

func TestGrant(t *testing.T) {
	f := setup(t)
	p := f.grant(t, record.ReadRight, nil, nil)
	assert.True(t, p.IsActive)
	assert.Equal(t, uint64(0), p.UsedDownloads)
	assert.True(t, f.owner.Equal(p.GrantedBy))
	assert.Equal(t, now, p.GrantedAt)

	g := &instruction.GrantAccess{Owner: f.owner, File: f.address, Accessor: f.accessor, Permissions: record.ReadRight}
	_, err := access.Grant(f.file, f.address, p, g, now)
	assert.Equal(t, fault.PermissionAlreadyExists, err)

	g.Owner = f.accessor
	_, err = access.Grant(f.file, f.address, nil, g, now)
	assert.Equal(t, fault.Unauthorised, err, "non-owner")

	g.Owner = f.owner
	g.Permissions = 8
	_, err = access.Grant(f.file, f.address, nil, g, now)
	assert.Equal(t, fault.InvalidPermissions, err)

	g.Permissions = 0
	_, err = access.Grant(f.file, f.address, nil, g, now)
	assert.Nil(t, err, "empty rights may be granted")

	past := now
	g.ExpiresAt = &past
	_, err = access.Grant(f.file, f.address, nil, g, now)
	assert.Equal(t, fault.InvalidExpiration, err, "expiry must be in the future")

	withinSecond := now.Add(999 * time.Millisecond)
	g.ExpiresAt = &withinSecond
	_, err = access.Grant(f.file, f.address, nil, g, now)
	assert.Equal(t, fault.InvalidExpiration, err, "expiry truncates to now")

	g.ExpiresAt = nil
	f.file.IsActive = false
	_, err = access.Grant(f.file, f.address, nil, g, now)
	assert.Equal(t, fault.FileNotActive, err)
}

func TestRecordRead(t *testing.T) {
	f := setup(t)
	p := f.grant(t, record.ReadRight, nil, nil)

	assert.Nil(t, access.RecordAccess(f.file, f.address, p, f.accessor, record.ReadAccess, now))
	assert.Equal(t, uint64(1), f.file.AccessCount)
	assert.Equal(t, uint64(0), f.file.DownloadCount)

	err := access.RecordAccess(f.file, f.address, p, f.accessor, record.DownloadAccess, now)
	assert.Equal(t, fault.Unauthorised, err, "missing download right")

	err = access.RecordAccess(f.file, f.address, p, f.owner, record.ReadAccess, now)
	assert.Equal(t, fault.Unauthorised, err, "wrong accessor")

	err = access.RecordAccess(f.file, f.address, p, f.accessor, record.AccessKind(4), now)
	assert.Equal(t, fault.InvalidAccessKind, err, "share is not recordable")

	other := digest.NewDigest([]byte("elsewhere"))
	err = access.RecordAccess(f.file, other, p, f.accessor, record.ReadAccess, now)
	assert.Equal(t, fault.InvalidAccessPermission, err)
}

func TestDownloadCap(t *testing.T) {
	f := setup(t)
	maximum := uint64(2)
	p := f.grant(t, record.DownloadRight, nil, &maximum)

	for i := 0; i < 2; i += 1 {
		require.Nil(t, access.RecordAccess(f.file, f.address, p, f.accessor, record.DownloadAccess, now), "download %d", i)
	}
	err := access.RecordAccess(f.file, f.address, p, f.accessor, record.DownloadAccess, now)
	assert.Equal(t, fault.DownloadLimitExceeded, err)
	assert.Equal(t, uint64(2), p.UsedDownloads)
	assert.Equal(t, uint64(2), f.file.DownloadCount)
}

func TestZeroCapBlocksDownloads(t *testing.T) {
	f := setup(t)
	maximum := uint64(0)
	p := f.grant(t, record.DownloadRight, nil, &maximum)
	err := access.RecordAccess(f.file, f.address, p, f.accessor, record.DownloadAccess, now)
	assert.Equal(t, fault.DownloadLimitExceeded, err)
}

func TestExpiry(t *testing.T) {
	f := setup(t)
	expires := now.Add(time.Hour)
	p := f.grant(t, record.ReadRight, &expires, nil)

	assert.Nil(t, access.RecordAccess(f.file, f.address, p, f.accessor, record.ReadAccess, now))

	err := access.RecordAccess(f.file, f.address, p, f.accessor, record.ReadAccess, expires)
	assert.Equal(t, fault.AccessRevoked, err)
	assert.Equal(t, uint64(1), f.file.AccessCount)
}

func TestRevoke(t *testing.T) {
	f := setup(t)
	p := f.grant(t, record.AllRights, nil, nil)

	assert.Equal(t, fault.Unauthorised, access.Revoke(f.file, f.address, p, f.accessor, now))

	later := now.Add(time.Minute)
	assert.Nil(t, access.Revoke(f.file, f.address, p, f.owner, later))
	assert.False(t, p.IsActive)
	require.NotNil(t, p.RevokedAt)
	assert.Equal(t, later, *p.RevokedAt)

	assert.Equal(t, fault.AlreadyRevoked, access.Revoke(f.file, f.address, p, f.owner, later.Add(time.Minute)))
	assert.Equal(t, later, *p.RevokedAt, "stamped once")

	err := access.RecordAccess(f.file, f.address, p, f.accessor, record.ReadAccess, later)
	assert.Equal(t, fault.AccessRevoked, err)
}

func TestInactiveFileBlocksAccess(t *testing.T) {
	f := setup(t)
	p := f.grant(t, record.ReadRight, nil, nil)
	f.file.IsActive = false
	err := access.RecordAccess(f.file, f.address, p, f.accessor, record.ReadAccess, now)
	assert.Equal(t, fault.FileNotActive, err)
	assert.Equal(t, uint64(0), f.file.AccessCount)
}
