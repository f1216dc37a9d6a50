// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - permissions over a single file for a single accessor
package access

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/record"
)

// Grant - the file owner creates a permission for an accessor
//
// existing is whatever is stored at the permission address
func Grant(f *record.File, file digest.Digest, existing *record.Permission, g *instruction.GrantAccess, now time.Time) (*record.Permission, error) {
	if !f.Owner.Equal(g.Owner) {
		return nil, fault.Unauthorised
	}
	if !f.IsActive {
		return nil, fault.FileNotActive
	}
	if !g.Permissions.Valid() {
		return nil, fault.InvalidPermissions
	}

	// stored with whole second precision, so compare the stored value
	var expires *time.Time
	if nil != g.ExpiresAt {
		e := time.Unix(g.ExpiresAt.Unix(), 0).UTC()
		if !e.After(now) {
			return nil, fault.InvalidExpiration
		}
		expires = &e
	}
	if nil != existing {
		return nil, fault.PermissionAlreadyExists
	}

	p := &record.Permission{
		File:          file,
		Accessor:      g.Accessor,
		Rights:        g.Permissions,
		GrantedAt:     now,
		UsedDownloads: 0,
		GrantedBy:     g.Owner,
		IsActive:      true,
	}
	p.ExpiresAt = expires
	if nil != g.MaxDownloads {
		maximum := *g.MaxDownloads
		p.MaxDownloads = &maximum
	}
	return p, nil
}

// RecordAccess - an accessor consumes a permission
//
// a read counts against the file's access count; a download counts
// against both the permission and the file's download count
func RecordAccess(f *record.File, file digest.Digest, p *record.Permission, accessor *account.Account, kind record.AccessKind, now time.Time) error {
	if !p.Accessor.Equal(accessor) {
		return fault.Unauthorised
	}
	if p.File != file {
		return fault.InvalidAccessPermission
	}
	if !f.IsActive {
		return fault.FileNotActive
	}
	if !p.IsUsable(now) {
		return fault.AccessRevoked
	}
	if !kind.Valid() {
		return fault.InvalidAccessKind
	}
	if !p.Rights.Has(kind.Right()) {
		return fault.Unauthorised
	}

	switch kind {
	case record.DownloadAccess:
		if nil != p.MaxDownloads && p.UsedDownloads >= *p.MaxDownloads {
			return fault.DownloadLimitExceeded
		}
		p.UsedDownloads += 1
		f.DownloadCount += 1
	case record.ReadAccess:
		f.AccessCount += 1
	}
	return nil
}

// Revoke - the file owner withdraws a permission
func Revoke(f *record.File, file digest.Digest, p *record.Permission, owner *account.Account, now time.Time) error {
	if !f.Owner.Equal(owner) {
		return fault.Unauthorised
	}
	if p.File != file {
		return fault.InvalidAccessPermission
	}
	if !p.IsActive {
		return fault.AlreadyRevoked
	}
	p.IsActive = false
	revokedAt := now
	p.RevokedAt = &revokedAt
	return nil
}
