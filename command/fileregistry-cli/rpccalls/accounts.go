// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/rpc/accounts"
)

// InitialiseAccount - create the quota record for the owner
func (client *Client) InitialiseAccount(owner *account.PrivateKey) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.InitialiseAccount{
		Owner: owner.Account(),
		Nonce: nonce,
	}
	if _, err := instruction.Sign(inst, owner); nil != err {
		return nil, err
	}

	client.trace("Initialise Request", inst)

	var reply ledger.Result
	err = client.client.Call("Accounts.Initialise", inst, &reply)
	if nil != err {
		return nil, err
	}

	client.trace("Initialise Reply", reply)

	return &reply, nil
}

// GetAccount - fetch the quota record of an owner
func (client *Client) GetAccount(owner *account.Account) (*accounts.GetReply, error) {

	arguments := &accounts.GetArguments{
		Owner: owner,
	}

	client.trace("Account Request", arguments)

	var reply accounts.GetReply
	err := client.client.Call("Accounts.Get", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.trace("Account Reply", reply)

	return &reply, nil
}
