// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/util"
)

// Unpack - turn a byte slice into an instruction
//
// every account must belong to the network selected by testnet;
// must cast result to correct type, e.g.
//
//   switch i := result.(type) {
//   case *instruction.Upload:
func (packed Packed) Unpack(testnet bool) (inst Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			inst = nil
			n = 0
			e = fault.NotInstructionPack
		}
	}()

	tag, n := util.ClippedVarint64(packed, 1, int(InvalidTag)-1)
	if 0 == n {
		return nil, 0, fault.NotInstructionPack
	}

	signer, n, err := unpackAccount(packed, n, testnet)
	if nil != err {
		return nil, 0, err
	}

	var ok bool

unpack_switch:
	switch TagType(tag) {

	case InitialiseAccountTag:
		i := &InitialiseAccount{
			Owner: signer,
		}
		if i.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if i.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return i, n, nil

	case UploadTag:
		u := &Upload{
			Owner: signer,
		}
		if u.FileHash, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		if u.ContentPointer, n, ok = unpackString(packed, n); !ok {
			break unpack_switch
		}
		if u.Metadata, n, ok = unpackString(packed, n); !ok {
			break unpack_switch
		}
		if u.FileSize, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if u.ContentType, n, ok = unpackString(packed, n); !ok {
			break unpack_switch
		}
		if u.Description, n, ok = unpackString(packed, n); !ok {
			break unpack_switch
		}
		if u.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if u.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return u, n, nil

	case GrantAccessTag:
		g := &GrantAccess{
			Owner: signer,
		}
		if g.File, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		g.Accessor, n, err = unpackAccount(packed, n, testnet)
		if nil != err {
			return nil, 0, err
		}
		permissions, permissionsLength := util.ClippedVarint64(packed[n:], 0, 255)
		if 0 == permissionsLength {
			break unpack_switch
		}
		g.Permissions = record.AccessRights(permissions)
		n += permissionsLength

		if g.ExpiresAt, n, ok = unpackOptionalTime(packed, n); !ok {
			break unpack_switch
		}

		// optional download cap
		switch packed[n] {
		case 0x00:
			n += 1
		case 0x01:
			n += 1
			var maximum uint64
			if maximum, n, ok = unpackUint64(packed, n); !ok {
				break unpack_switch
			}
			g.MaxDownloads = &maximum
		default:
			break unpack_switch
		}

		if g.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if g.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return g, n, nil

	case VerifyTag:
		v := &Verify{
			Verifier: signer,
		}
		if v.File, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		if v.FileHash, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		if v.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if v.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return v, n, nil

	case RecordAccessTag:
		r := &RecordAccess{
			Accessor: signer,
		}
		if r.File, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		if r.Permission, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		kind, kindLength := util.ClippedVarint64(packed[n:], 0, 255)
		if 0 == kindLength {
			break unpack_switch
		}
		r.Kind = record.AccessKind(kind)
		n += kindLength
		if r.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if r.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return r, n, nil

	case RevokeAccessTag:
		r := &RevokeAccess{
			Owner: signer,
		}
		if r.File, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		if r.Permission, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		if r.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if r.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return r, n, nil

	case UpdatePublicityTag:
		u := &UpdatePublicity{
			Owner: signer,
		}
		if u.File, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		switch packed[n] {
		case 0x00:
			u.IsPublic = false
		case 0x01:
			u.IsPublic = true
		default:
			break unpack_switch
		}
		n += 1
		if u.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if u.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return u, n, nil

	case DeleteTag:
		d := &Delete{
			Owner: signer,
		}
		if d.File, n, ok = unpackDigest(packed, n); !ok {
			break unpack_switch
		}
		if d.Nonce, n, ok = unpackUint64(packed, n); !ok {
			break unpack_switch
		}
		if d.Signature, n, ok = unpackSignature(packed, n); !ok {
			break unpack_switch
		}
		return d, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.NotInstructionPack
}

// each helper returns the value, the new offset and success

func unpackUint64(packed Packed, n int) (uint64, int, bool) {
	value, length := util.FromVarint64(packed[n:])
	if 0 == length {
		return 0, n, false
	}
	return value, n + length, true
}

func unpackBytes(packed Packed, n int, minimum int, maximum int) ([]byte, int, bool) {
	length, offset := util.ClippedVarint64(packed[n:], minimum, maximum)
	if 0 == offset {
		return nil, n, false
	}
	n += offset
	if n+length > len(packed) {
		return nil, n, false
	}
	data := make([]byte, length)
	copy(data, packed[n:n+length])
	return data, n + length, true
}

func unpackString(packed Packed, n int) (string, int, bool) {
	data, n, ok := unpackBytes(packed, n, 0, maxStringLength)
	return string(data), n, ok
}

func unpackDigest(packed Packed, n int) (digest.Digest, int, bool) {
	var d digest.Digest
	data, n, ok := unpackBytes(packed, n, digest.Length-1, digest.Length)
	if !ok || nil != digest.FromBytes(&d, data) {
		return d, n, false
	}
	return d, n, true
}

func unpackSignature(packed Packed, n int) (account.Signature, int, bool) {
	data, n, ok := unpackBytes(packed, n, 1, maxSignatureLength)
	return account.Signature(data), n, ok
}

func unpackOptionalTime(packed Packed, n int) (*time.Time, int, bool) {
	switch packed[n] {
	case 0x00:
		return nil, n + 1, true
	case 0x01:
		seconds, n, ok := unpackUint64(packed, n+1)
		if !ok {
			return nil, n, false
		}
		t := time.Unix(int64(seconds), 0).UTC()
		return &t, n, true
	default:
		return nil, n, false
	}
}

func unpackAccount(packed Packed, n int, testnet bool) (*account.Account, int, error) {
	data, n, ok := unpackBytes(packed, n, 1, maxAccountLength)
	if !ok || 0 == len(data) {
		return nil, 0, fault.NotInstructionPack
	}
	a, err := account.AccountFromBytes(data)
	if nil != err {
		return nil, 0, err
	}
	if a.IsTesting() != testnet {
		return nil, 0, fault.WrongNetworkForPublicKey
	}
	return a, n, nil
}
