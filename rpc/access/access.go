// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitAccess = 200
	rateBurstAccess = 100
)

// Access - type for the RPC
type Access struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry ledger.Registry
}

// New - create the access service
func New(log *logger.L, registry ledger.Registry) *Access {
	return &Access{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAccess, rateBurstAccess),
		Registry: registry,
	}
}

// Grant - the owner gives an accessor rights over a file
func (access *Access) Grant(arguments *instruction.GrantAccess, reply *ledger.Result) error {
	if nil == arguments || nil == arguments.Owner || nil == arguments.Accessor {
		return fault.MissingParameters
	}
	return access.execute("grant", arguments, reply)
}

// Record - the accessor reads or downloads a file
func (access *Access) Record(arguments *instruction.RecordAccess, reply *ledger.Result) error {
	if nil == arguments || nil == arguments.Accessor {
		return fault.MissingParameters
	}
	return access.execute("record", arguments, reply)
}

// Revoke - the owner withdraws a permission
func (access *Access) Revoke(arguments *instruction.RevokeAccess, reply *ledger.Result) error {
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	return access.execute("revoke", arguments, reply)
}

func (access *Access) execute(name string, inst instruction.Instruction, reply *ledger.Result) error {

	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}

	access.Log.Infof("%s: signer: %s", name, inst.Signer())

	result, err := access.Registry.Execute(inst)
	if nil != err {
		access.Log.Debugf("%s: error: %s", name, err)
		return err
	}

	*reply = *result
	return nil
}

// ---

// GetArguments - arguments for Get
type GetArguments struct {
	Permission digest.Digest `json:"permission"`
}

// Get - fetch a permission and whether it is usable now
func (access *Access) Get(arguments *GetArguments, reply *ledger.PermissionStatus) error {

	if err := ratelimit.Limit(access.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	status, err := access.Registry.GetPermission(arguments.Permission)
	if nil != err {
		return err
	}
	*reply = *status
	return nil
}
