// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/messagebus"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/logger"
)

// event kinds
const (
	AccountInitialised = "account_initialised"
	FileUploaded       = "file_uploaded"
	AccessGranted      = "access_granted"
	FileVerified       = "file_verified"
	FileAccessed       = "file_accessed"
	AccessRevoked      = "access_revoked"
	PublicityUpdated   = "publicity_updated"
	FileDeleted        = "file_deleted"
)

// Event - what a committed instruction changed
//
// only the fields relevant to the kind are set
type Event struct {
	Kind              string               `json:"kind"`
	Id                digest.Digest        `json:"id"`
	Actor             *account.Account     `json:"actor"`
	Owner             *account.Account     `json:"owner,omitempty"`
	Accessor          *account.Account     `json:"accessor,omitempty"`
	File              *digest.Digest       `json:"file,omitempty"`
	Permission        *digest.Digest       `json:"permission,omitempty"`
	FileHash          *digest.Digest       `json:"fileHash,omitempty"`
	ContentPointer    string               `json:"contentPointer,omitempty"`
	FileSize          uint64               `json:"fileSize,omitempty"`
	Permissions       *record.AccessRights `json:"permissions,omitempty"`
	ExpiresAt         *time.Time           `json:"expiresAt,omitempty"`
	AccessKind        string               `json:"accessKind,omitempty"`
	IsPublic          *bool                `json:"isPublic,omitempty"`
	VerificationId    uint64               `json:"verificationId,omitempty,string"`
	OriginalTimestamp *time.Time           `json:"originalTimestamp,omitempty"`
	Timestamp         time.Time            `json:"timestamp"`
}

// send to the event bus as: kind, JSON body
func publish(log *logger.L, e *Event) {
	body, err := json.Marshal(e)
	if nil != err {
		log.Errorf("event: %s  marshal error: %s", e.Kind, err)
		return
	}
	messagebus.Bus.Events.Send(e.Kind, body)
}
