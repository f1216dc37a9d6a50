// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/access"
	"github.com/bitmark-inc/fileregistryd/accounts"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/files"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/storage"
)

func initialiseAccount(trx storage.Transaction, i *instruction.InitialiseAccount, now time.Time) (*Result, *Event, error) {
	existing, address, err := loadAccount(trx, i.Owner)
	if nil != err {
		return nil, nil, err
	}
	a, err := accounts.Initialise(i.Owner, existing, now)
	if nil != err {
		return nil, nil, err
	}
	storeAccount(trx, address, a)

	e := &Event{
		Kind:  AccountInitialised,
		Actor: i.Owner,
		Owner: i.Owner,
	}
	return &Result{Address: address}, e, nil
}

func upload(trx storage.Transaction, u *instruction.Upload, now time.Time) (*Result, *Event, error) {
	// bounds before any state is read
	if err := files.CheckBounds(u); nil != err {
		return nil, nil, err
	}

	address := record.FileAddress(u.Owner, u.FileHash)
	existing, err := loadFile(trx, address)
	if nil != err {
		return nil, nil, err
	}
	if nil != existing {
		return nil, nil, fault.FileAlreadyExists
	}

	a, accountAddress, err := loadAccount(trx, u.Owner)
	if nil != err {
		return nil, nil, err
	}

	verificationId, err := nextVerificationId(trx)
	if nil != err {
		return nil, nil, err
	}

	f, err := files.Upload(a, existing, u, verificationId, now)
	if nil != err {
		return nil, nil, err
	}

	storeAccount(trx, accountAddress, a)
	storeFile(trx, address, f)
	trx.Put(storage.Pool.OwnerFiles, ownerFileKey(u.Owner, address), []byte{})

	fileHash := f.FileHash
	e := &Event{
		Kind:           FileUploaded,
		Actor:          u.Owner,
		Owner:          u.Owner,
		File:           &address,
		FileHash:       &fileHash,
		ContentPointer: f.ContentPointer,
		FileSize:       f.FileSize,
		VerificationId: f.VerificationId,
	}
	result := &Result{
		Address:        address,
		VerificationId: f.VerificationId,
	}
	return result, e, nil
}

func grantAccess(trx storage.Transaction, g *instruction.GrantAccess, now time.Time) (*Result, *Event, error) {
	f, err := loadFile(trx, g.File)
	if nil != err {
		return nil, nil, err
	}
	if nil == f {
		return nil, nil, fault.FileNotFound
	}

	address := record.PermissionAddress(g.File, g.Accessor)
	existing, err := loadPermission(trx, address)
	if nil != err {
		return nil, nil, err
	}

	p, err := access.Grant(f, g.File, existing, g, now)
	if nil != err {
		return nil, nil, err
	}
	storePermission(trx, address, p)

	rights := p.Rights
	e := &Event{
		Kind:        AccessGranted,
		Actor:       g.Owner,
		Owner:       g.Owner,
		Accessor:    g.Accessor,
		File:        &g.File,
		Permission:  &address,
		Permissions: &rights,
		ExpiresAt:   p.ExpiresAt,
	}
	return &Result{Address: address}, e, nil
}

func verify(trx storage.Transaction, v *instruction.Verify) (*Result, *Event, error) {
	f, err := loadFile(trx, v.File)
	if nil != err {
		return nil, nil, err
	}
	if nil == f {
		return nil, nil, fault.FileNotFound
	}

	err = files.Verify(f, v.FileHash)
	if nil != err {
		return nil, nil, err
	}
	storeFile(trx, v.File, f)

	fileHash := f.FileHash
	original := f.Timestamp
	e := &Event{
		Kind:              FileVerified,
		Actor:             v.Verifier,
		File:              &v.File,
		FileHash:          &fileHash,
		OriginalTimestamp: &original,
		VerificationId:    f.VerificationId,
	}
	result := &Result{
		Address:        v.File,
		VerificationId: f.VerificationId,
	}
	return result, e, nil
}

func recordAccess(trx storage.Transaction, r *instruction.RecordAccess, now time.Time) (*Result, *Event, error) {
	f, err := loadFile(trx, r.File)
	if nil != err {
		return nil, nil, err
	}
	if nil == f {
		return nil, nil, fault.FileNotFound
	}
	p, err := loadPermission(trx, r.Permission)
	if nil != err {
		return nil, nil, err
	}
	if nil == p {
		return nil, nil, fault.PermissionNotFound
	}

	err = access.RecordAccess(f, r.File, p, r.Accessor, r.Kind, now)
	if nil != err {
		return nil, nil, err
	}
	storeFile(trx, r.File, f)
	if record.DownloadAccess == r.Kind {
		storePermission(trx, r.Permission, p)
	}

	e := &Event{
		Kind:       FileAccessed,
		Actor:      r.Accessor,
		Accessor:   r.Accessor,
		File:       &r.File,
		Permission: &r.Permission,
		AccessKind: r.Kind.String(),
	}
	return &Result{Address: r.Permission}, e, nil
}

func revokeAccess(trx storage.Transaction, r *instruction.RevokeAccess, now time.Time) (*Result, *Event, error) {
	f, err := loadFile(trx, r.File)
	if nil != err {
		return nil, nil, err
	}
	if nil == f {
		return nil, nil, fault.FileNotFound
	}
	p, err := loadPermission(trx, r.Permission)
	if nil != err {
		return nil, nil, err
	}
	if nil == p {
		return nil, nil, fault.PermissionNotFound
	}

	err = access.Revoke(f, r.File, p, r.Owner, now)
	if nil != err {
		return nil, nil, err
	}
	storePermission(trx, r.Permission, p)

	e := &Event{
		Kind:       AccessRevoked,
		Actor:      r.Owner,
		Owner:      r.Owner,
		Accessor:   p.Accessor,
		File:       &r.File,
		Permission: &r.Permission,
	}
	return &Result{Address: r.Permission}, e, nil
}

func updatePublicity(trx storage.Transaction, u *instruction.UpdatePublicity) (*Result, *Event, error) {
	f, err := loadFile(trx, u.File)
	if nil != err {
		return nil, nil, err
	}
	if nil == f {
		return nil, nil, fault.FileNotFound
	}

	err = files.UpdatePublicity(f, u.Owner, u.IsPublic)
	if nil != err {
		return nil, nil, err
	}
	storeFile(trx, u.File, f)

	isPublic := u.IsPublic
	e := &Event{
		Kind:     PublicityUpdated,
		Actor:    u.Owner,
		Owner:    u.Owner,
		File:     &u.File,
		IsPublic: &isPublic,
	}
	return &Result{Address: u.File}, e, nil
}

func deleteFile(trx storage.Transaction, d *instruction.Delete, now time.Time) (*Result, *Event, error) {
	f, err := loadFile(trx, d.File)
	if nil != err {
		return nil, nil, err
	}
	if nil == f {
		return nil, nil, fault.FileNotFound
	}

	// the account of the file's owner, not of the signer
	a, accountAddress, err := loadAccount(trx, f.Owner)
	if nil != err {
		return nil, nil, err
	}

	err = files.Delete(a, f, d.Owner, now)
	if nil != err {
		return nil, nil, err
	}
	storeFile(trx, d.File, f)
	if nil != a {
		storeAccount(trx, accountAddress, a)
	}

	e := &Event{
		Kind:  FileDeleted,
		Actor: d.Owner,
		Owner: d.Owner,
		File:  &d.File,
	}
	return &Result{Address: d.File}, e, nil
}
