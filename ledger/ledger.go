// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/storage"
	"github.com/bitmark-inc/fileregistryd/util"
	"github.com/bitmark-inc/logger"
)

// Clock - source of the current time
type Clock func() time.Time

// Ledger - applies instructions to the store one at a time
type Ledger struct {
	sync.Mutex
	log     *logger.L
	testnet bool
	clock   Clock
}

// Result - outcome of a committed instruction
type Result struct {
	Id             digest.Digest `json:"id"`
	Kind           string        `json:"kind"`
	Address        digest.Digest `json:"address"`
	VerificationId uint64        `json:"verificationId,omitempty,string"`
	Timestamp      time.Time     `json:"timestamp"`
}

// New - create a ledger over the already initialised storage pools
//
// a nil clock selects time.Now
func New(log *logger.L, testnet bool, clock Clock) *Ledger {
	if nil == clock {
		clock = time.Now
	}
	return &Ledger{
		log:     log,
		testnet: testnet,
		clock:   clock,
	}
}

// ExecutePacked - decode then execute a signed instruction
func (l *Ledger) ExecutePacked(packed instruction.Packed) (*Result, error) {
	inst, n, err := packed.Unpack(l.testnet)
	if nil != err {
		return nil, err
	}
	if n != len(packed) {
		return nil, fault.NotInstructionPack
	}
	return l.Execute(inst)
}

// Execute - apply one signed instruction atomically
//
// either every write of the instruction is committed or none is
func (l *Ledger) Execute(inst instruction.Instruction) (*Result, error) {
	if nil == inst {
		return nil, fault.MissingParameters
	}

	l.Lock()
	defer l.Unlock()

	result, e, err := l.execute(inst)
	if nil != err {
		rejectedCounter.WithLabelValues(inst.Tag().String()).Inc()
		l.log.Debugf("%s rejected: %s", inst.Tag(), err)
		return nil, err
	}
	appliedCounter.WithLabelValues(inst.Tag().String()).Inc()
	l.log.Infof("%s applied: id: %s  address: %s", inst.Tag(), result.Id, result.Address)

	publish(l.log, e)
	return result, nil
}

func (l *Ledger) execute(inst instruction.Instruction) (*Result, *Event, error) {

	// verifies the signature
	packed, err := inst.Pack()
	if nil != err {
		return nil, nil, err
	}

	for _, a := range instruction.Accounts(inst) {
		if nil == a || nil == a.AccountInterface {
			return nil, nil, fault.MissingParameters
		}
		if a.IsTesting() != l.testnet {
			return nil, nil, fault.WrongNetworkForPublicKey
		}
	}

	id := packed.Id()
	now := l.clock().UTC().Truncate(time.Second)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, nil, err
	}

	seen, err := trx.Has(storage.Pool.Instructions, id[:])
	if nil != err {
		trx.Abort()
		return nil, nil, err
	}
	if seen {
		trx.Abort()
		return nil, nil, fault.InstructionAlreadyExists
	}

	result, e, err := l.apply(trx, inst, now)
	if nil != err {
		trx.Abort()
		return nil, nil, err
	}

	// replay guard
	applied := append(util.ToVarint64(uint64(inst.Tag())), util.ToVarint64(uint64(now.Unix()))...)
	trx.Put(storage.Pool.Instructions, id[:], applied)

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("commit: %s  error: %s", id, err)
		return nil, nil, err
	}

	result.Id = id
	result.Kind = inst.Tag().String()
	result.Timestamp = now
	e.Id = id
	e.Timestamp = now
	return result, e, nil
}

// dispatch to the handler for each instruction type
func (l *Ledger) apply(trx storage.Transaction, inst instruction.Instruction, now time.Time) (*Result, *Event, error) {
	switch i := inst.(type) {
	case *instruction.InitialiseAccount:
		return initialiseAccount(trx, i, now)
	case *instruction.Upload:
		return upload(trx, i, now)
	case *instruction.GrantAccess:
		return grantAccess(trx, i, now)
	case *instruction.Verify:
		return verify(trx, i)
	case *instruction.RecordAccess:
		return recordAccess(trx, i, now)
	case *instruction.RevokeAccess:
		return revokeAccess(trx, i, now)
	case *instruction.UpdatePublicity:
		return updatePublicity(trx, i)
	case *instruction.Delete:
		return deleteFile(trx, i, now)
	default:
		return nil, nil, fault.UnknownInstruction
	}
}
