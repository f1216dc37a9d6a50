// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/fileregistryd/fault"
)

// Access - low level database access shared by all pools
//
// Get and Has see the writes of the open batch;
// GetCommitted and Iterator only see data already written
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	GetCommitted([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

// AccessData - a batch in front of a leveldb database
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

// Begin - mark the batch as in use
func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyInUse
	}

	d.inUse = true
	return nil
}

// Put - queue a write
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// Delete - queue a removal
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// Commit - write the whole batch atomically then reset
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

// DumpTx - the raw batch contents
func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - read through the pending writes
//
// a missing key returns nil data and no error
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, deleted, found := d.cache.Get(string(key))
	if deleted {
		return nil, nil
	}
	if found {
		return val, nil
	}
	return d.GetCommitted(key)
}

// GetCommitted - read only what is on disk
func (d *AccessData) GetCommitted(key []byte) ([]byte, error) {
	val, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return val, err
}

// Iterator - range scan of committed data
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

// Has - check existence through the pending writes
func (d *AccessData) Has(key []byte) (bool, error) {
	_, deleted, found := d.cache.Get(string(key))
	if deleted {
		return false, nil
	}
	if found {
		return true, nil
	}
	return d.db.Has(key, nil)
}

// InUse - true between Begin and Commit or Abort
func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - discard all pending writes
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
