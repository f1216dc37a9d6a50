// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instructions

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitInstructions = 100
	rateBurstInstructions = 100

	// larger than any valid packed instruction
	maximumPackedLength = 8192
)

// Instructions - type for the RPC
type Instructions struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry ledger.Registry
}

// New - create the instructions service
func New(log *logger.L, registry ledger.Registry) *Instructions {
	return &Instructions{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitInstructions, rateBurstInstructions),
		Registry: registry,
	}
}

// SubmitArguments - a signed instruction packed elsewhere, in hex
type SubmitArguments struct {
	Packed string `json:"packed"`
}

// Submit - apply an instruction that was packed and signed offline
func (instructions *Instructions) Submit(arguments *SubmitArguments, reply *ledger.Result) error {

	if err := ratelimit.Limit(instructions.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Packed {
		return fault.MissingParameters
	}
	if len(arguments.Packed) > 2*maximumPackedLength {
		return fault.InstructionTooLong
	}

	packed, err := hex.DecodeString(arguments.Packed)
	if nil != err {
		return fault.NotInstructionPack
	}

	instructions.Log.Infof("submit: id: %s", instruction.Packed(packed).Id())

	result, err := instructions.Registry.ExecutePacked(packed)
	if nil != err {
		instructions.Log.Debugf("submit: error: %s", err)
		return err
	}

	*reply = *result
	return nil
}
