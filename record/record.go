// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
)

// policy limits
const (
	MaxFileSize           = 10 * 1024 * 1024   // 10 MiB
	DefaultStorageLimit   = 1024 * 1024 * 1024 // 1 GiB
	DefaultFileLimit      = 100
	MaxContentPointer     = 100
	MaxContentType        = 100
	MaxDescription        = 500
	MaxMetadata           = 2048
	maxAccountBytesLength = 64
)

// AccessRights - bit set of what an accessor may do with a file
type AccessRights uint8

// individual rights
const (
	ReadRight     AccessRights = 1 << iota // view the content
	DownloadRight                          // fetch a copy
	ShareRight                             // pass the file on

	AllRights = ReadRight | DownloadRight | ShareRight
)

// Valid - only the three defined bits may be set
func (r AccessRights) Valid() bool {
	return r&^AllRights == 0
}

// Has - true if every bit of other is present
func (r AccessRights) Has(other AccessRights) bool {
	return r&other == other
}

// AccessKind - the kind of access being recorded
type AccessKind uint8

// recordable accesses
const (
	ReadAccess     AccessKind = AccessKind(ReadRight)
	DownloadAccess AccessKind = AccessKind(DownloadRight)
)

// Valid - check kind is one of the recordable accesses
func (k AccessKind) Valid() bool {
	return k == ReadAccess || k == DownloadAccess
}

// Right - the access right required for this kind
func (k AccessKind) Right() AccessRights {
	return AccessRights(k)
}

// String - kind as text
func (k AccessKind) String() string {
	switch k {
	case ReadAccess:
		return "read"
	case DownloadAccess:
		return "download"
	default:
		return "*unknown*"
	}
}

// Account - per-owner quota and file count bookkeeping
type Account struct {
	Owner        *account.Account `json:"owner"`
	FileCount    uint64           `json:"fileCount"`
	StorageUsed  uint64           `json:"storageUsed"`
	StorageLimit uint64           `json:"storageLimit"`
	FileLimit    uint64           `json:"fileLimit"`
	CreatedAt    time.Time        `json:"createdAt"`
	IsActive     bool             `json:"isActive"`
}

// File - the fingerprint of one file held by one owner
type File struct {
	Owner                *account.Account `json:"owner"`
	FileHash             digest.Digest    `json:"fileHash"`
	ContentPointer       string           `json:"contentPointer"`
	Metadata             string           `json:"metadata"`
	FileSize             uint64           `json:"fileSize"`
	ContentType          string           `json:"contentType"`
	Description          string           `json:"description"`
	Timestamp            time.Time        `json:"timestamp"`
	IsPublicVerification bool             `json:"isPublicVerification"`
	AccessCount          uint64           `json:"accessCount"`
	DownloadCount        uint64           `json:"downloadCount"`
	IsActive             bool             `json:"isActive"`
	DeletedAt            *time.Time       `json:"deletedAt,omitempty"`
	VerificationId       uint64           `json:"verificationId,string"`
}

// Permission - the rights granted to one accessor over one file
type Permission struct {
	File          digest.Digest    `json:"file"`
	Accessor      *account.Account `json:"accessor"`
	Rights        AccessRights     `json:"permissions"`
	GrantedAt     time.Time        `json:"grantedAt"`
	ExpiresAt     *time.Time       `json:"expiresAt,omitempty"`
	MaxDownloads  *uint64          `json:"maxDownloads,omitempty"`
	UsedDownloads uint64           `json:"usedDownloads"`
	GrantedBy     *account.Account `json:"grantedBy"`
	IsActive      bool             `json:"isActive"`
	RevokedAt     *time.Time       `json:"revokedAt,omitempty"`
}

// IsUsable - active and not yet expired at the given time
//
// expiry is never written back, it is derived each time
func (p *Permission) IsUsable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if nil != p.ExpiresAt && !now.Before(*p.ExpiresAt) {
		return false
	}
	return true
}

// address domains
var (
	accountDomain    = []byte("user")
	fileDomain       = []byte("file")
	permissionDomain = []byte("access")
)

// AccountAddress - storage address of an owner's account
func AccountAddress(owner *account.Account) digest.Digest {
	return digest.NewDigest(accountDomain, owner.Bytes())
}

// FileAddress - storage address of a file, unique per owner and fingerprint
func FileAddress(owner *account.Account, fileHash digest.Digest) digest.Digest {
	return digest.NewDigest(fileDomain, owner.Bytes(), fileHash[:])
}

// PermissionAddress - storage address of a permission, unique per file and accessor
func PermissionAddress(file digest.Digest, accessor *account.Account) digest.Digest {
	return digest.NewDigest(permissionDomain, file[:], accessor.Bytes())
}
