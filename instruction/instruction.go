// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/record"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as an instruction type
	NullTag = TagType(iota)

	InitialiseAccountTag = TagType(iota) // create the owner's account
	UploadTag            = TagType(iota) // register a file fingerprint
	GrantAccessTag       = TagType(iota) // give an accessor rights over a file
	VerifyTag            = TagType(iota) // compare a presented fingerprint
	RecordAccessTag      = TagType(iota) // accessor reads or downloads
	RevokeAccessTag      = TagType(iota) // withdraw a permission
	UpdatePublicityTag   = TagType(iota) // toggle public verification
	DeleteTag            = TagType(iota) // retire a file

	// this item must be last
	InvalidTag = TagType(iota)
)

// String - tag as text
func (tag TagType) String() string {
	switch tag {
	case InitialiseAccountTag:
		return "initialise_account"
	case UploadTag:
		return "upload"
	case GrantAccessTag:
		return "grant_access"
	case VerifyTag:
		return "verify"
	case RecordAccessTag:
		return "record_access"
	case RevokeAccessTag:
		return "revoke_access"
	case UpdatePublicityTag:
		return "update_publicity"
	case DeleteTag:
		return "delete"
	default:
		return "*invalid*"
	}
}

// Packed - packed instructions are just a byte slice
type Packed []byte

// Id - SHA3-256 of the complete signed instruction
func (packed Packed) Id() digest.Digest {
	return digest.NewDigest(packed)
}

// String - hex form
func (packed Packed) String() string {
	return hex.EncodeToString(packed)
}

// Instruction - the closed set of requests the ledger can apply
//
// the unexported method keeps the set closed to this package
type Instruction interface {
	Pack() (Packed, error)
	Tag() TagType
	Signer() *account.Account
	setSignature(account.Signature)
}

// byte sizes for various fields
const (
	maxSignatureLength = 1024
	maxAccountLength   = 64
	maxStringLength    = 8192
)

// InitialiseAccount - create the signer's account
type InitialiseAccount struct {
	Owner     *account.Account  `json:"owner"`        // base58
	Nonce     uint64            `json:"nonce,string"` // distinguishes otherwise identical instructions
	Signature account.Signature `json:"signature"`    // hex
}

// Upload - register the fingerprint of a file
type Upload struct {
	Owner          *account.Account  `json:"owner"`
	FileHash       digest.Digest     `json:"fileHash"`
	ContentPointer string            `json:"contentPointer"`
	Metadata       string            `json:"metadata"`
	FileSize       uint64            `json:"fileSize,string"`
	ContentType    string            `json:"contentType"`
	Description    string            `json:"description"`
	Nonce          uint64            `json:"nonce,string"`
	Signature      account.Signature `json:"signature"`
}

// GrantAccess - the file owner gives an accessor rights over a file
type GrantAccess struct {
	Owner        *account.Account    `json:"owner"`
	File         digest.Digest       `json:"file"`
	Accessor     *account.Account    `json:"accessor"`
	Permissions  record.AccessRights `json:"permissions"`
	ExpiresAt    *time.Time          `json:"expiresAt,omitempty"`
	MaxDownloads *uint64             `json:"maxDownloads,omitempty"`
	Nonce        uint64              `json:"nonce,string"`
	Signature    account.Signature   `json:"signature"`
}

// Verify - anyone may check a presented fingerprint against a file
type Verify struct {
	Verifier  *account.Account  `json:"verifier"`
	File      digest.Digest     `json:"file"`
	FileHash  digest.Digest     `json:"fileHash"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// RecordAccess - an accessor consumes a permission
type RecordAccess struct {
	Accessor   *account.Account  `json:"accessor"`
	File       digest.Digest     `json:"file"`
	Permission digest.Digest     `json:"permission"`
	Kind       record.AccessKind `json:"kind"`
	Nonce      uint64            `json:"nonce,string"`
	Signature  account.Signature `json:"signature"`
}

// RevokeAccess - the file owner withdraws a permission
type RevokeAccess struct {
	Owner      *account.Account  `json:"owner"`
	File       digest.Digest     `json:"file"`
	Permission digest.Digest     `json:"permission"`
	Nonce      uint64            `json:"nonce,string"`
	Signature  account.Signature `json:"signature"`
}

// UpdatePublicity - the file owner toggles public verification
type UpdatePublicity struct {
	Owner     *account.Account  `json:"owner"`
	File      digest.Digest     `json:"file"`
	IsPublic  bool              `json:"isPublic"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Delete - the file owner retires a file
type Delete struct {
	Owner     *account.Account  `json:"owner"`
	File      digest.Digest     `json:"file"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Tag - type code of each instruction
func (*InitialiseAccount) Tag() TagType { return InitialiseAccountTag }
func (*Upload) Tag() TagType            { return UploadTag }
func (*GrantAccess) Tag() TagType       { return GrantAccessTag }
func (*Verify) Tag() TagType            { return VerifyTag }
func (*RecordAccess) Tag() TagType      { return RecordAccessTag }
func (*RevokeAccess) Tag() TagType      { return RevokeAccessTag }
func (*UpdatePublicity) Tag() TagType   { return UpdatePublicityTag }
func (*Delete) Tag() TagType            { return DeleteTag }

// Signer - the account whose signature authorises the instruction
func (i *InitialiseAccount) Signer() *account.Account { return i.Owner }
func (u *Upload) Signer() *account.Account            { return u.Owner }
func (g *GrantAccess) Signer() *account.Account       { return g.Owner }
func (v *Verify) Signer() *account.Account            { return v.Verifier }
func (r *RecordAccess) Signer() *account.Account      { return r.Accessor }
func (r *RevokeAccess) Signer() *account.Account      { return r.Owner }
func (u *UpdatePublicity) Signer() *account.Account   { return u.Owner }
func (d *Delete) Signer() *account.Account            { return d.Owner }

func (i *InitialiseAccount) setSignature(s account.Signature) { i.Signature = s }
func (u *Upload) setSignature(s account.Signature)            { u.Signature = s }
func (g *GrantAccess) setSignature(s account.Signature)       { g.Signature = s }
func (v *Verify) setSignature(s account.Signature)            { v.Signature = s }
func (r *RecordAccess) setSignature(s account.Signature)      { r.Signature = s }
func (r *RevokeAccess) setSignature(s account.Signature)      { r.Signature = s }
func (u *UpdatePublicity) setSignature(s account.Signature)   { u.Signature = s }
func (d *Delete) setSignature(s account.Signature)            { d.Signature = s }

// Accounts - every account named by an instruction, for network checks
func Accounts(inst Instruction) []*account.Account {
	switch i := inst.(type) {
	case *GrantAccess:
		return []*account.Account{i.Owner, i.Accessor}
	default:
		return []*account.Account{inst.Signer()}
	}
}
