// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/rpc/access"
)

// GrantData - data for a grant request
type GrantData struct {
	Owner        *account.PrivateKey
	File         digest.Digest
	Accessor     *account.Account
	Permissions  record.AccessRights
	ExpiresAt    *time.Time
	MaxDownloads *uint64
}

// Grant - give an accessor rights over a file
func (client *Client) Grant(grantConfig *GrantData) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.GrantAccess{
		Owner:        grantConfig.Owner.Account(),
		File:         grantConfig.File,
		Accessor:     grantConfig.Accessor,
		Permissions:  grantConfig.Permissions,
		ExpiresAt:    grantConfig.ExpiresAt,
		MaxDownloads: grantConfig.MaxDownloads,
		Nonce:        nonce,
	}

	return client.execute("Access.Grant", "Grant", inst, grantConfig.Owner)
}

// RecordAccess - consume a permission to read or download a file
func (client *Client) RecordAccess(accessor *account.PrivateKey, file digest.Digest, permission digest.Digest, kind record.AccessKind) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.RecordAccess{
		Accessor:   accessor.Account(),
		File:       file,
		Permission: permission,
		Kind:       kind,
		Nonce:      nonce,
	}

	return client.execute("Access.Record", "Access", inst, accessor)
}

// Revoke - withdraw a permission
func (client *Client) Revoke(owner *account.PrivateKey, file digest.Digest, permission digest.Digest) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.RevokeAccess{
		Owner:      owner.Account(),
		File:       file,
		Permission: permission,
		Nonce:      nonce,
	}

	return client.execute("Access.Revoke", "Revoke", inst, owner)
}

// GetPermission - fetch a permission and whether it is usable now
func (client *Client) GetPermission(address digest.Digest) (*ledger.PermissionStatus, error) {

	arguments := &access.GetArguments{
		Permission: address,
	}

	client.trace("Permission Request", arguments)

	var reply ledger.PermissionStatus
	err := client.client.Call("Access.Get", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.trace("Permission Reply", reply)

	return &reply, nil
}
