// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/util"
)

// record format versions
const (
	accountVersion    = 1
	fileVersion       = 1
	permissionVersion = 1
)

// Packed - stored form of a record
type Packed []byte

// Pack - account record
//
// Varint64(version) followed by fields in struct order
func (a *Account) Pack() Packed {
	buffer := Packed(util.ToVarint64(accountVersion))
	buffer = buffer.appendAccount(a.Owner)
	buffer = buffer.appendUint64(a.FileCount)
	buffer = buffer.appendUint64(a.StorageUsed)
	buffer = buffer.appendUint64(a.StorageLimit)
	buffer = buffer.appendUint64(a.FileLimit)
	buffer = buffer.appendTime(a.CreatedAt)
	buffer = buffer.appendBool(a.IsActive)
	return buffer
}

// Pack - file record
func (f *File) Pack() Packed {
	buffer := Packed(util.ToVarint64(fileVersion))
	buffer = buffer.appendAccount(f.Owner)
	buffer = buffer.appendBytes(f.FileHash[:])
	buffer = buffer.appendString(f.ContentPointer)
	buffer = buffer.appendString(f.Metadata)
	buffer = buffer.appendUint64(f.FileSize)
	buffer = buffer.appendString(f.ContentType)
	buffer = buffer.appendString(f.Description)
	buffer = buffer.appendTime(f.Timestamp)
	buffer = buffer.appendBool(f.IsPublicVerification)
	buffer = buffer.appendUint64(f.AccessCount)
	buffer = buffer.appendUint64(f.DownloadCount)
	buffer = buffer.appendBool(f.IsActive)
	buffer = buffer.appendOptionalTime(f.DeletedAt)
	buffer = buffer.appendUint64(f.VerificationId)
	return buffer
}

// Pack - permission record
func (p *Permission) Pack() Packed {
	buffer := Packed(util.ToVarint64(permissionVersion))
	buffer = buffer.appendBytes(p.File[:])
	buffer = buffer.appendAccount(p.Accessor)
	buffer = buffer.appendUint64(uint64(p.Rights))
	buffer = buffer.appendTime(p.GrantedAt)
	buffer = buffer.appendOptionalTime(p.ExpiresAt)
	if nil == p.MaxDownloads {
		buffer = append(buffer, 0x00)
	} else {
		buffer = append(buffer, 0x01)
		buffer = buffer.appendUint64(*p.MaxDownloads)
	}
	buffer = buffer.appendUint64(p.UsedDownloads)
	buffer = buffer.appendAccount(p.GrantedBy)
	buffer = buffer.appendBool(p.IsActive)
	buffer = buffer.appendOptionalTime(p.RevokedAt)
	return buffer
}

// append a string prefixed by Varint64(length)
func (buffer Packed) appendString(s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// append bytes prefixed by Varint64(length)
func (buffer Packed) appendBytes(data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func (buffer Packed) appendAccount(a *account.Account) Packed {
	return buffer.appendBytes(a.Bytes())
}

func (buffer Packed) appendUint64(value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

func (buffer Packed) appendBool(b bool) Packed {
	if b {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

// times are whole seconds since the epoch
func (buffer Packed) appendTime(t time.Time) Packed {
	return buffer.appendUint64(uint64(t.Unix()))
}

// presence byte then the value
func (buffer Packed) appendOptionalTime(t *time.Time) Packed {
	if nil == t {
		return append(buffer, 0x00)
	}
	buffer = append(buffer, 0x01)
	return buffer.appendTime(*t)
}
