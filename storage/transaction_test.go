// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (*gomock.Controller, Transaction, *PoolHandle, *mocks.MockAccess) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)

	handle := &PoolHandle{
		prefix:     'X',
		limit:      []byte{'Y'},
		dataAccess: mock,
	}
	return ctl, newTransaction(mock), handle, mock
}

func TestTransactionPutPrefixesKey(t *testing.T) {
	ctl, trx, handle, mock := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Put([]byte("Xkey"), []byte("value")).Times(1)
	trx.Put(handle, []byte("key"), []byte("value"))
}

func TestTransactionPutN(t *testing.T) {
	ctl, trx, handle, mock := setupTestTransaction(t)
	defer ctl.Finish()

	expected := make([]byte, 8)
	binary.BigEndian.PutUint64(expected, 1234)
	mock.EXPECT().Put([]byte("Xcount"), expected).Times(1)
	trx.PutN(handle, []byte("count"), 1234)
}

func TestTransactionDelete(t *testing.T) {
	ctl, trx, handle, mock := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Delete([]byte("Xkey")).Times(1)
	trx.Delete(handle, []byte("key"))
}

func TestTransactionGetN(t *testing.T) {
	ctl, trx, handle, mock := setupTestTransaction(t)
	defer ctl.Finish()

	stored := make([]byte, 8)
	binary.BigEndian.PutUint64(stored, 99)
	mock.EXPECT().Get([]byte("Xcount")).Return(stored, nil).Times(1)
	mock.EXPECT().Get([]byte("Xnone")).Return(nil, nil).Times(1)
	mock.EXPECT().Get([]byte("Xshort")).Return([]byte{1, 2}, nil).Times(1)

	n, found, err := trx.GetN(handle, []byte("count"))
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(99), n)

	_, found, err = trx.GetN(handle, []byte("none"))
	assert.Nil(t, err)
	assert.False(t, found)

	_, _, err = trx.GetN(handle, []byte("short"))
	assert.NotNil(t, err, "truncated counter")
}

func TestTransactionCommitAndAbort(t *testing.T) {
	ctl, trx, _, mock := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Commit().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)
	mock.EXPECT().InUse().Return(true).Times(1)

	assert.True(t, trx.InUse())
	assert.Nil(t, trx.Commit())
	trx.Abort()
}
