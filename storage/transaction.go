// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
)

// Transaction - all writes between NewDBTransaction and Commit are
// applied together or, after Abort, not at all
type Transaction interface {
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	GetN(*PoolHandle, []byte) (uint64, bool, error)
	Has(*PoolHandle, []byte) (bool, error)
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type transactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		access: access,
	}
}

func (t *transactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *transactionData) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

func (t *transactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *transactionData) Get(handle *PoolHandle, key []byte) ([]byte, error) {
	return handle.get(key)
}

func (t *transactionData) GetN(handle *PoolHandle, key []byte) (uint64, bool, error) {
	buffer, err := handle.get(key)
	if nil != err || nil == buffer {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fmt.Errorf("truncated counter record for: %x", key)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

func (t *transactionData) Has(handle *PoolHandle, key []byte) (bool, error) {
	return handle.has(key)
}

func (t *transactionData) InUse() bool {
	return t.access.InUse()
}

func (t *transactionData) Commit() error {
	return t.access.Commit()
}

func (t *transactionData) Abort() {
	t.access.Abort()
}
