// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/util"
)

// sequential reader over a packed record
//
// the first failure sticks; later reads return zero values
type unpacker struct {
	buffer Packed
	n      int
	err    error
}

func (u *unpacker) fail() {
	if nil == u.err {
		u.err = fault.RecordCorrupt
	}
}

func (u *unpacker) uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.fail()
		return 0
	}
	u.n += count
	return value
}

func (u *unpacker) bytes(maximum int) []byte {
	if nil != u.err {
		return nil
	}
	length, count := util.ClippedVarint64(u.buffer[u.n:], 0, maximum)
	if 0 == count || u.n+count+length > len(u.buffer) {
		u.fail()
		return nil
	}
	u.n += count
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+length])
	u.n += length
	return data
}

func (u *unpacker) string(maximum int) string {
	return string(u.bytes(maximum))
}

func (u *unpacker) digest() digest.Digest {
	var d digest.Digest
	b := u.bytes(digest.Length)
	if nil != u.err {
		return d
	}
	if err := digest.FromBytes(&d, b); nil != err {
		u.fail()
	}
	return d
}

func (u *unpacker) account() *account.Account {
	b := u.bytes(maxAccountBytesLength)
	if nil != u.err {
		return nil
	}
	a, err := account.AccountFromBytes(b)
	if nil != err {
		u.fail()
		return nil
	}
	return a
}

func (u *unpacker) flag() bool {
	if nil != u.err {
		return false
	}
	if u.n >= len(u.buffer) {
		u.fail()
		return false
	}
	b := u.buffer[u.n]
	u.n += 1
	switch b {
	case 0x00:
		return false
	case 0x01:
		return true
	default:
		u.fail()
		return false
	}
}

func (u *unpacker) time() time.Time {
	return time.Unix(int64(u.uint64()), 0).UTC()
}

func (u *unpacker) optionalTime() *time.Time {
	if !u.flag() {
		return nil
	}
	t := u.time()
	return &t
}

func (u *unpacker) version(expected uint64) {
	if v := u.uint64(); nil == u.err && v != expected {
		u.fail()
	}
}

// finish - the whole buffer must have been consumed
func (u *unpacker) finish() error {
	if nil == u.err && u.n != len(u.buffer) {
		u.fail()
	}
	return u.err
}

// AccountFromPacked - decode a stored account record
func AccountFromPacked(buffer Packed) (*Account, error) {
	u := &unpacker{buffer: buffer}
	u.version(accountVersion)
	a := &Account{
		Owner:        u.account(),
		FileCount:    u.uint64(),
		StorageUsed:  u.uint64(),
		StorageLimit: u.uint64(),
		FileLimit:    u.uint64(),
		CreatedAt:    u.time(),
		IsActive:     u.flag(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return a, nil
}

// FileFromPacked - decode a stored file record
func FileFromPacked(buffer Packed) (*File, error) {
	u := &unpacker{buffer: buffer}
	u.version(fileVersion)
	f := &File{
		Owner:                u.account(),
		FileHash:             u.digest(),
		ContentPointer:       u.string(MaxContentPointer),
		Metadata:             u.string(MaxMetadata),
		FileSize:             u.uint64(),
		ContentType:          u.string(MaxContentType),
		Description:          u.string(MaxDescription),
		Timestamp:            u.time(),
		IsPublicVerification: u.flag(),
		AccessCount:          u.uint64(),
		DownloadCount:        u.uint64(),
		IsActive:             u.flag(),
		DeletedAt:            u.optionalTime(),
		VerificationId:       u.uint64(),
	}
	if err := u.finish(); nil != err {
		return nil, err
	}
	return f, nil
}

// PermissionFromPacked - decode a stored permission record
func PermissionFromPacked(buffer Packed) (*Permission, error) {
	u := &unpacker{buffer: buffer}
	u.version(permissionVersion)
	p := &Permission{
		File:      u.digest(),
		Accessor:  u.account(),
		Rights:    AccessRights(u.uint64()),
		GrantedAt: u.time(),
		ExpiresAt: u.optionalTime(),
	}
	if u.flag() {
		maximum := u.uint64()
		p.MaxDownloads = &maximum
	}
	p.UsedDownloads = u.uint64()
	p.GrantedBy = u.account()
	p.IsActive = u.flag()
	p.RevokedAt = u.optionalTime()

	if err := u.finish(); nil != err {
		return nil, err
	}
	if !p.Rights.Valid() {
		return nil, fault.RecordCorrupt
	}
	return p, nil
}
