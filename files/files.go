// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package files

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/accounts"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/record"
)

// CheckBounds - validate the size and length limits of an upload
func CheckBounds(u *instruction.Upload) error {
	if 0 == u.FileSize || u.FileSize > record.MaxFileSize {
		return fault.InvalidFileSize
	}
	if len(u.ContentPointer) > record.MaxContentPointer {
		return fault.PointerTooLong
	}
	if len(u.Metadata) > record.MaxMetadata {
		return fault.MetadataTooLong
	}
	if len(u.ContentType) > record.MaxContentType {
		return fault.ContentTypeTooLong
	}
	if len(u.Description) > record.MaxDescription {
		return fault.DescriptionTooLong
	}
	return nil
}

// Upload - create a file record and charge the owner's quota
//
// owner is the stored account of the signer (nil if absent) and existing
// the record at the derived file address (nil if absent); owner is
// modified in place when the upload succeeds
func Upload(owner *record.Account, existing *record.File, u *instruction.Upload, verificationId uint64, now time.Time) (*record.File, error) {
	if err := CheckBounds(u); nil != err {
		return nil, err
	}
	if nil != existing {
		return nil, fault.FileAlreadyExists
	}
	if nil == owner {
		return nil, fault.AccountNotFound
	}
	if !owner.IsActive {
		return nil, fault.AccountInactive
	}
	if 0 == verificationId {
		return nil, fault.InvalidCount
	}
	if err := accounts.Reserve(owner, u.FileSize); nil != err {
		return nil, err
	}

	return &record.File{
		Owner:                u.Owner,
		FileHash:             u.FileHash,
		ContentPointer:       u.ContentPointer,
		Metadata:             u.Metadata,
		FileSize:             u.FileSize,
		ContentType:          u.ContentType,
		Description:          u.Description,
		Timestamp:            now,
		IsPublicVerification: false,
		AccessCount:          0,
		DownloadCount:        0,
		IsActive:             true,
		VerificationId:       verificationId,
	}, nil
}

// Verify - compare a presented fingerprint with the stored one
//
// any account may verify; a match counts as one access
func Verify(f *record.File, presented digest.Digest) error {
	if f.FileHash != presented {
		return fault.HashMismatch
	}
	if !f.IsActive {
		return fault.FileNotActive
	}
	f.AccessCount += 1
	return nil
}

// UpdatePublicity - owner sets whether the file is publicly verifiable
func UpdatePublicity(f *record.File, owner *account.Account, isPublic bool) error {
	if !f.Owner.Equal(owner) {
		return fault.Unauthorised
	}
	if !f.IsActive {
		return fault.FileNotActive
	}
	f.IsPublicVerification = isPublic
	return nil
}

// Delete - owner retires a file and recovers its quota
//
// the record is kept with its counters; only the active flag changes
func Delete(a *record.Account, f *record.File, owner *account.Account, now time.Time) error {
	if !f.Owner.Equal(owner) {
		return fault.Unauthorised
	}
	if !f.IsActive {
		return fault.AlreadyDeleted
	}
	f.IsActive = false
	deletedAt := now
	f.DeletedAt = &deletedAt
	if nil != a {
		accounts.Release(a, f.FileSize)
	}
	return nil
}
