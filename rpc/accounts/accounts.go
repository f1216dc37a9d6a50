// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitAccounts = 100
	rateBurstAccounts = 100
)

// Accounts - type for the RPC
type Accounts struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry ledger.Registry
}

// New - create the accounts service
func New(log *logger.L, registry ledger.Registry) *Accounts {
	return &Accounts{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAccounts, rateBurstAccounts),
		Registry: registry,
	}
}

// Initialise - create the quota account of the signing owner
func (accounts *Accounts) Initialise(arguments *instruction.InitialiseAccount, reply *ledger.Result) error {

	if err := ratelimit.Limit(accounts.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	accounts.Log.Infof("initialise: %s", arguments.Owner)

	result, err := accounts.Registry.Execute(arguments)
	if nil != err {
		accounts.Log.Debugf("initialise: %s  error: %s", arguments.Owner, err)
		return err
	}

	*reply = *result
	return nil
}

// ---

// GetArguments - arguments for Get
type GetArguments struct {
	Owner *account.Account `json:"owner"`
}

// GetReply - result of Get
type GetReply struct {
	Account *record.Account `json:"account"`
}

// Get - fetch the quota record of an owner
func (accounts *Accounts) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(accounts.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	if arguments.Owner.IsTesting() != accounts.Registry.IsTesting() {
		return fault.WrongNetworkForPublicKey
	}

	a, err := accounts.Registry.GetAccount(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Account = a
	return nil
}
