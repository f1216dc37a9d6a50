// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package files_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/accounts"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/files"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/record"
)

var now = time.Unix(1600000000, 0).UTC()

func makeOwner(t *testing.T) *account.Account {
	seed, err := account.NewBase58EncodedSeed(true)
	require.Nil(t, err)
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err)
	return privateKey.Account()
}

func newUpload(owner *account.Account, size uint64) *instruction.Upload {
	return &instruction.Upload{
		Owner:          owner,
		FileHash:       digest.NewDigest([]byte("contents")),
		ContentPointer: "QmPointer",
		Metadata:       "{}",
		FileSize:       size,
		ContentType:    "text/plain",
		Description:    "notes",
	}
}

func TestUploadCreatesRecord(t *testing.T) {
	owner := makeOwner(t)
	a, err := accounts.Initialise(owner, nil, now)
	require.Nil(t, err)

	f, err := files.Upload(a, nil, newUpload(owner, 1024), 1, now)
	require.Nil(t, err)
	assert.True(t, f.IsActive)
	assert.False(t, f.IsPublicVerification)
	assert.Equal(t, uint64(0), f.AccessCount)
	assert.Equal(t, uint64(0), f.DownloadCount)
	assert.Equal(t, uint64(1), f.VerificationId)
	assert.Equal(t, now, f.Timestamp)

	assert.Equal(t, uint64(1), a.FileCount)
	assert.Equal(t, uint64(1024), a.StorageUsed)

	_, err = files.Upload(a, f, newUpload(owner, 1024), 2, now)
	assert.Equal(t, fault.FileAlreadyExists, err)
	assert.Equal(t, uint64(1), a.FileCount, "no second reservation")
}

func TestUploadBounds(t *testing.T) {
	owner := makeOwner(t)

	type mutate func(*instruction.Upload)
	tests := []struct {
		name   string
		change mutate
		err    error
	}{
		{"zero size", func(u *instruction.Upload) { u.FileSize = 0 }, fault.InvalidFileSize},
		{"oversize", func(u *instruction.Upload) { u.FileSize = record.MaxFileSize + 1 }, fault.InvalidFileSize},
		{"pointer", func(u *instruction.Upload) { u.ContentPointer = strings.Repeat("p", record.MaxContentPointer+1) }, fault.PointerTooLong},
		{"metadata", func(u *instruction.Upload) { u.Metadata = strings.Repeat("m", record.MaxMetadata+1) }, fault.MetadataTooLong},
		{"content type", func(u *instruction.Upload) { u.ContentType = strings.Repeat("c", record.MaxContentType+1) }, fault.ContentTypeTooLong},
		{"description", func(u *instruction.Upload) { u.Description = strings.Repeat("d", record.MaxDescription+1) }, fault.DescriptionTooLong},
	}

	for _, test := range tests {
		a, err := accounts.Initialise(owner, nil, now)
		require.Nil(t, err)
		u := newUpload(owner, 10)
		test.change(u)
		_, err = files.Upload(a, nil, u, 1, now)
		assert.Equal(t, test.err, err, test.name)
		assert.Equal(t, uint64(0), a.FileCount, "%s: account untouched", test.name)
	}

	a, _ := accounts.Initialise(owner, nil, now)
	_, err := files.Upload(a, nil, newUpload(owner, record.MaxFileSize), 1, now)
	assert.Nil(t, err, "maximum size is allowed")
}

func TestUploadAccountChecks(t *testing.T) {
	owner := makeOwner(t)

	_, err := files.Upload(nil, nil, newUpload(owner, 10), 1, now)
	assert.Equal(t, fault.AccountNotFound, err)

	inactive := &record.Account{Owner: owner, StorageLimit: 100, FileLimit: 1}
	_, err = files.Upload(inactive, nil, newUpload(owner, 10), 1, now)
	assert.Equal(t, fault.AccountInactive, err)

	full := &record.Account{Owner: owner, StorageLimit: 100, StorageUsed: 95, FileLimit: 10, IsActive: true}
	_, err = files.Upload(full, nil, newUpload(owner, 10), 1, now)
	assert.Equal(t, fault.QuotaExceeded, err)
}

func TestVerify(t *testing.T) {
	owner := makeOwner(t)
	a, _ := accounts.Initialise(owner, nil, now)
	f, err := files.Upload(a, nil, newUpload(owner, 10), 1, now)
	require.Nil(t, err)

	assert.Nil(t, files.Verify(f, f.FileHash))
	assert.Equal(t, uint64(1), f.AccessCount)

	assert.Equal(t, fault.HashMismatch, files.Verify(f, digest.NewDigest([]byte("other"))))
	assert.Equal(t, uint64(1), f.AccessCount, "mismatch leaves count")
}

func TestPublicityAndDelete(t *testing.T) {
	owner := makeOwner(t)
	stranger := makeOwner(t)
	a, _ := accounts.Initialise(owner, nil, now)
	f, err := files.Upload(a, nil, newUpload(owner, 10), 1, now)
	require.Nil(t, err)

	assert.Equal(t, fault.Unauthorised, files.UpdatePublicity(f, stranger, true))
	assert.Nil(t, files.UpdatePublicity(f, owner, true))
	assert.True(t, f.IsPublicVerification)

	assert.Equal(t, fault.Unauthorised, files.Delete(a, f, stranger, now))
	assert.True(t, f.IsActive)

	later := now.Add(time.Hour)
	assert.Nil(t, files.Delete(a, f, owner, later))
	assert.False(t, f.IsActive)
	require.NotNil(t, f.DeletedAt)
	assert.Equal(t, later, *f.DeletedAt)
	assert.True(t, f.IsPublicVerification, "publicity retained")
	assert.Equal(t, uint64(0), a.FileCount)
	assert.Equal(t, uint64(0), a.StorageUsed)

	assert.Equal(t, fault.AlreadyDeleted, files.Delete(a, f, owner, later))
	assert.Equal(t, fault.FileNotActive, files.UpdatePublicity(f, owner, false))
	assert.Equal(t, fault.FileNotActive, files.Verify(f, f.FileHash))
	assert.Equal(t, later, *f.DeletedAt, "stamped once")
}
