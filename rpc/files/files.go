// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package files

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitFiles = 200
	rateBurstFiles = 100

	maximumFileList = 100
)

// Files - type for the RPC
type Files struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry ledger.Registry
}

// New - create the files service
func New(log *logger.L, registry ledger.Registry) *Files {
	return &Files{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitFiles, rateBurstFiles),
		Registry: registry,
	}
}

// Upload - register a file fingerprint for the signing owner
func (files *Files) Upload(arguments *instruction.Upload, reply *ledger.Result) error {
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	return files.execute("upload", arguments, reply)
}

// Verify - compare a presented fingerprint with the stored one
func (files *Files) Verify(arguments *instruction.Verify, reply *ledger.Result) error {
	if nil == arguments || nil == arguments.Verifier {
		return fault.MissingParameters
	}
	return files.execute("verify", arguments, reply)
}

// UpdatePublicity - toggle public verification of a file
func (files *Files) UpdatePublicity(arguments *instruction.UpdatePublicity, reply *ledger.Result) error {
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	return files.execute("publicity", arguments, reply)
}

// Delete - retire a file and release its quota
func (files *Files) Delete(arguments *instruction.Delete, reply *ledger.Result) error {
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	return files.execute("delete", arguments, reply)
}

func (files *Files) execute(name string, inst instruction.Instruction, reply *ledger.Result) error {

	if err := ratelimit.Limit(files.Limiter); nil != err {
		return err
	}

	files.Log.Infof("%s: signer: %s", name, inst.Signer())

	result, err := files.Registry.Execute(inst)
	if nil != err {
		files.Log.Debugf("%s: error: %s", name, err)
		return err
	}

	*reply = *result
	return nil
}

// ---

// GetArguments - arguments for Get and Status
type GetArguments struct {
	Address digest.Digest `json:"address"`
}

// GetReply - result of Get
type GetReply struct {
	Address digest.Digest `json:"address"`
	File    *record.File  `json:"file"`
}

// Get - fetch a file record
func (files *Files) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(files.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	f, err := files.Registry.GetFile(arguments.Address)
	if nil != err {
		return err
	}
	reply.Address = arguments.Address
	reply.File = f
	return nil
}

// Status - public verification status of a file
func (files *Files) Status(arguments *GetArguments, reply *ledger.VerificationStatus) error {

	if err := ratelimit.Limit(files.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	status, err := files.Registry.GetVerificationStatus(arguments.Address)
	if nil != err {
		return err
	}
	*reply = *status
	return nil
}

// ---

// ListArguments - arguments for List
type ListArguments struct {
	Owner *account.Account `json:"owner"`
	Start *digest.Digest   `json:"start,omitempty"`
	Count int              `json:"count"`
}

// ListReply - result of List
type ListReply struct {
	Files     []ledger.FileEntry `json:"files"`
	NextStart *digest.Digest     `json:"nextStart,omitempty"`
}

// List - page through the files of an owner
func (files *Files) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(files.Limiter, arguments.Count, maximumFileList); nil != err {
		return err
	}

	if arguments.Owner.IsTesting() != files.Registry.IsTesting() {
		return fault.WrongNetworkForPublicKey
	}

	entries, next, err := files.Registry.ListFiles(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Files = entries
	reply.NextStart = next
	return nil
}
