// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/storage"
)

// queries only see committed data and never take the ledger lock

// FileEntry - a file together with its address
type FileEntry struct {
	Address digest.Digest `json:"address"`
	File    *record.File  `json:"file"`
}

// PermissionStatus - a permission and whether it can be used now
type PermissionStatus struct {
	Address    digest.Digest      `json:"address"`
	Permission *record.Permission `json:"permission"`
	Usable     bool               `json:"usable"`
}

// VerificationStatus - the public view of a file
type VerificationStatus struct {
	Address        digest.Digest    `json:"address"`
	Owner          *account.Account `json:"owner"`
	FileHash       digest.Digest    `json:"fileHash"`
	Timestamp      time.Time        `json:"timestamp"`
	VerificationId uint64           `json:"verificationId,string"`
	IsActive       bool             `json:"isActive"`
	AccessCount    uint64           `json:"accessCount"`
}

// maximum entries from one ListFiles
const maximumFileList = 100

// IsTesting - true if the ledger accepts testnet accounts
func (l *Ledger) IsTesting() bool {
	return l.testnet
}

// Now - the ledger's current time, as used for expiry
func (l *Ledger) Now() time.Time {
	return l.clock().UTC().Truncate(time.Second)
}

// GetAccount - the quota record of an owner
func (l *Ledger) GetAccount(owner *account.Account) (*record.Account, error) {
	if nil == owner {
		return nil, fault.MissingParameters
	}
	address := record.AccountAddress(owner)
	packed := storage.Pool.Accounts.Get(address[:])
	if nil == packed {
		return nil, fault.AccountNotFound
	}
	return record.AccountFromPacked(packed)
}

// GetFile - a file record by address
func (l *Ledger) GetFile(address digest.Digest) (*record.File, error) {
	packed := storage.Pool.Files.Get(address[:])
	if nil == packed {
		return nil, fault.FileNotFound
	}
	return record.FileFromPacked(packed)
}

// GetPermission - a permission record by address
func (l *Ledger) GetPermission(address digest.Digest) (*PermissionStatus, error) {
	packed := storage.Pool.Permissions.Get(address[:])
	if nil == packed {
		return nil, fault.PermissionNotFound
	}
	p, err := record.PermissionFromPacked(packed)
	if nil != err {
		return nil, err
	}
	return &PermissionStatus{
		Address:    address,
		Permission: p,
		Usable:     p.IsUsable(l.Now()),
	}, nil
}

// ListFiles - files of an owner in address order
//
// listing starts after the given address when it is not nil;
// the second result is the address to continue from or nil at the end
func (l *Ledger) ListFiles(owner *account.Account, after *digest.Digest, count int) ([]FileEntry, *digest.Digest, error) {
	if nil == owner {
		return nil, nil, fault.MissingParameters
	}
	if count <= 0 || count > maximumFileList {
		return nil, nil, fault.InvalidCount
	}

	ownerBytes := owner.Bytes()
	cursor := storage.Pool.OwnerFiles.NewPrefixCursor(ownerBytes)
	if nil != after {
		cursor.Seek(append(ownerFileKey(owner, *after), 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, nil, err
	}

	entries := make([]FileEntry, 0, len(elements))
	for _, e := range elements {
		var address digest.Digest
		err := digest.FromBytes(&address, e.Key[len(ownerBytes):])
		if nil != err {
			return nil, nil, fault.RecordCorrupt
		}
		f, err := l.GetFile(address)
		if nil != err {
			return nil, nil, err
		}
		entries = append(entries, FileEntry{
			Address: address,
			File:    f,
		})
	}

	if len(entries) < count {
		return entries, nil, nil
	}
	next := entries[len(entries)-1].Address
	return entries, &next, nil
}

// GetVerificationStatus - anyone may check a file that has public verification enabled
func (l *Ledger) GetVerificationStatus(address digest.Digest) (*VerificationStatus, error) {
	f, err := l.GetFile(address)
	if nil != err {
		return nil, err
	}
	if !f.IsPublicVerification {
		return nil, fault.PublicVerificationNotEnabled
	}
	return &VerificationStatus{
		Address:        address,
		Owner:          f.Owner,
		FileHash:       f.FileHash,
		Timestamp:      f.Timestamp,
		VerificationId: f.VerificationId,
		IsActive:       f.IsActive,
		AccessCount:    f.AccessCount,
	}, nil
}
