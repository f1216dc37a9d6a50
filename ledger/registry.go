// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/record"
)

// Registry - the operations available to the RPC services
type Registry interface {
	Execute(instruction.Instruction) (*Result, error)
	ExecutePacked(instruction.Packed) (*Result, error)
	GetAccount(*account.Account) (*record.Account, error)
	GetFile(digest.Digest) (*record.File, error)
	GetPermission(digest.Digest) (*PermissionStatus, error)
	ListFiles(*account.Account, *digest.Digest, int) ([]FileEntry, *digest.Digest, error)
	GetVerificationStatus(digest.Digest) (*VerificationStatus, error)
	IsTesting() bool
	Now() time.Time
}

var _ Registry = (*Ledger)(nil)
