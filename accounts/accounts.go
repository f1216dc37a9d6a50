// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accounts - per-owner quota bookkeeping
//
// all functions operate on records already loaded by the caller;
// persistence is the ledger's concern
package accounts

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/record"
)

// Initialise - create a fresh account for owner
//
// existing is the record currently stored at the owner's address, if any
func Initialise(owner *account.Account, existing *record.Account, now time.Time) (*record.Account, error) {
	if nil == owner {
		return nil, fault.MissingParameters
	}
	if nil != existing {
		return nil, fault.AccountAlreadyExists
	}
	return &record.Account{
		Owner:        owner,
		FileCount:    0,
		StorageUsed:  0,
		StorageLimit: record.DefaultStorageLimit,
		FileLimit:    record.DefaultFileLimit,
		CreatedAt:    now,
		IsActive:     true,
	}, nil
}

// Reserve - take space for one more file of the given size
//
// the account is unchanged on error
func Reserve(a *record.Account, size uint64) error {
	if a.StorageUsed+size < a.StorageUsed || a.StorageUsed+size > a.StorageLimit {
		return fault.QuotaExceeded
	}
	if a.FileCount+1 > a.FileLimit {
		return fault.TooManyFiles
	}
	a.StorageUsed += size
	a.FileCount += 1
	return nil
}

// Release - give back the space of one file
//
// both counters saturate at zero
func Release(a *record.Account, size uint64) {
	if size > a.StorageUsed {
		a.StorageUsed = 0
	} else {
		a.StorageUsed -= size
	}
	if a.FileCount > 0 {
		a.FileCount -= 1
	}
}
