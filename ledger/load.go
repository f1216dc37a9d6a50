// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/storage"
)

// name of the sequence used for verification ids
var verificationSequence = []byte("verification")

// each load returns nil without error when the record is absent

func loadAccount(trx storage.Transaction, owner *account.Account) (*record.Account, digest.Digest, error) {
	address := record.AccountAddress(owner)
	packed, err := trx.Get(storage.Pool.Accounts, address[:])
	if nil != err || nil == packed {
		return nil, address, err
	}
	a, err := record.AccountFromPacked(packed)
	return a, address, err
}

func loadFile(trx storage.Transaction, address digest.Digest) (*record.File, error) {
	packed, err := trx.Get(storage.Pool.Files, address[:])
	if nil != err || nil == packed {
		return nil, err
	}
	return record.FileFromPacked(packed)
}

func loadPermission(trx storage.Transaction, address digest.Digest) (*record.Permission, error) {
	packed, err := trx.Get(storage.Pool.Permissions, address[:])
	if nil != err || nil == packed {
		return nil, err
	}
	return record.PermissionFromPacked(packed)
}

func storeAccount(trx storage.Transaction, address digest.Digest, a *record.Account) {
	trx.Put(storage.Pool.Accounts, address[:], a.Pack())
}

func storeFile(trx storage.Transaction, address digest.Digest, f *record.File) {
	trx.Put(storage.Pool.Files, address[:], f.Pack())
}

func storePermission(trx storage.Transaction, address digest.Digest, p *record.Permission) {
	trx.Put(storage.Pool.Permissions, address[:], p.Pack())
}

// owner ++ file address
func ownerFileKey(owner *account.Account, file digest.Digest) []byte {
	return append(owner.Bytes(), file[:]...)
}

// next strictly positive verification id
func nextVerificationId(trx storage.Transaction) (uint64, error) {
	n, _, err := trx.GetN(storage.Pool.Counters, verificationSequence)
	if nil != err {
		return 0, err
	}
	n += 1
	trx.PutN(storage.Pool.Counters, verificationSequence, n)
	return n, nil
}
