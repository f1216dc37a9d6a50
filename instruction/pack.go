// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/util"
)

// every Pack below produces:
//   Varint64(tag) ++ fields in struct order ++ nonce ++ signature
//
// NOTE: returns the "unsigned" message on signature failure so that
//       a client can sign it and pack again

// Pack - InitialiseAccount
func (i *InitialiseAccount) Pack() (Packed, error) {
	message, err := start(InitialiseAccountTag, i.Owner, i.Signature)
	if nil != err {
		return nil, err
	}
	message = appendUint64(message, i.Nonce)
	return finish(message, i.Owner, i.Signature)
}

// Pack - Upload
func (u *Upload) Pack() (Packed, error) {
	message, err := start(UploadTag, u.Owner, u.Signature)
	if nil != err {
		return nil, err
	}
	if len(u.ContentPointer) > maxStringLength ||
		len(u.Metadata) > maxStringLength ||
		len(u.ContentType) > maxStringLength ||
		len(u.Description) > maxStringLength {
		return nil, fault.FieldTooLong
	}
	message = appendBytes(message, u.FileHash[:])
	message = appendString(message, u.ContentPointer)
	message = appendString(message, u.Metadata)
	message = appendUint64(message, u.FileSize)
	message = appendString(message, u.ContentType)
	message = appendString(message, u.Description)
	message = appendUint64(message, u.Nonce)
	return finish(message, u.Owner, u.Signature)
}

// Pack - GrantAccess
func (g *GrantAccess) Pack() (Packed, error) {
	message, err := start(GrantAccessTag, g.Owner, g.Signature)
	if nil != err {
		return nil, err
	}
	if nil == g.Accessor {
		return nil, fault.MissingParameters
	}
	message = appendBytes(message, g.File[:])
	message = appendAccount(message, g.Accessor)
	message = appendUint64(message, uint64(g.Permissions))
	message = appendOptionalTime(message, g.ExpiresAt)
	if nil == g.MaxDownloads {
		message = append(message, 0x00)
	} else {
		message = append(message, 0x01)
		message = appendUint64(message, *g.MaxDownloads)
	}
	message = appendUint64(message, g.Nonce)
	return finish(message, g.Owner, g.Signature)
}

// Pack - Verify
func (v *Verify) Pack() (Packed, error) {
	message, err := start(VerifyTag, v.Verifier, v.Signature)
	if nil != err {
		return nil, err
	}
	message = appendBytes(message, v.File[:])
	message = appendBytes(message, v.FileHash[:])
	message = appendUint64(message, v.Nonce)
	return finish(message, v.Verifier, v.Signature)
}

// Pack - RecordAccess
func (r *RecordAccess) Pack() (Packed, error) {
	message, err := start(RecordAccessTag, r.Accessor, r.Signature)
	if nil != err {
		return nil, err
	}
	message = appendBytes(message, r.File[:])
	message = appendBytes(message, r.Permission[:])
	message = appendUint64(message, uint64(r.Kind))
	message = appendUint64(message, r.Nonce)
	return finish(message, r.Accessor, r.Signature)
}

// Pack - RevokeAccess
func (r *RevokeAccess) Pack() (Packed, error) {
	message, err := start(RevokeAccessTag, r.Owner, r.Signature)
	if nil != err {
		return nil, err
	}
	message = appendBytes(message, r.File[:])
	message = appendBytes(message, r.Permission[:])
	message = appendUint64(message, r.Nonce)
	return finish(message, r.Owner, r.Signature)
}

// Pack - UpdatePublicity
func (u *UpdatePublicity) Pack() (Packed, error) {
	message, err := start(UpdatePublicityTag, u.Owner, u.Signature)
	if nil != err {
		return nil, err
	}
	message = appendBytes(message, u.File[:])
	if u.IsPublic {
		message = append(message, 0x01)
	} else {
		message = append(message, 0x00)
	}
	message = appendUint64(message, u.Nonce)
	return finish(message, u.Owner, u.Signature)
}

// Pack - Delete
func (d *Delete) Pack() (Packed, error) {
	message, err := start(DeleteTag, d.Owner, d.Signature)
	if nil != err {
		return nil, err
	}
	message = appendBytes(message, d.File[:])
	message = appendUint64(message, d.Nonce)
	return finish(message, d.Owner, d.Signature)
}

// common prefix: tag and signer
func start(tag TagType, signer *account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == signer || nil == signer.AccountInterface {
		return nil, fault.MissingParameters
	}
	message := Packed(util.ToVarint64(uint64(tag)))
	return appendAccount(message, signer), nil
}

// check signature then append it last
func finish(message Packed, signer *account.Account, signature account.Signature) (Packed, error) {
	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	return appendBytes(message, signature), nil
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, address *account.Account) Packed {
	return appendBytes(buffer, address.Bytes())
}

// append bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

// presence byte followed by seconds since the epoch
func appendOptionalTime(buffer Packed, t *time.Time) Packed {
	if nil == t {
		return append(buffer, 0x00)
	}
	buffer = append(buffer, 0x01)
	return appendUint64(buffer, uint64(t.Unix()))
}
