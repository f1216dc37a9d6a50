// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/record"
)

func makeKey(t *testing.T, testnet bool) *account.PrivateKey {
	seed, err := account.NewBase58EncodedSeed(testnet)
	require.Nil(t, err)
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err)
	return privateKey
}

func TestSignedUploadUnpack(t *testing.T) {
	owner := makeKey(t, true)

	u := &instruction.Upload{
		Owner:          owner.Account(),
		FileHash:       digest.NewDigest([]byte("contents")),
		ContentPointer: "QmHash",
		Metadata:       `{"name":"report.pdf"}`,
		FileSize:       4096,
		ContentType:    "application/pdf",
		Description:    "quarterly report",
		Nonce:          42,
	}

	// unsigned pack returns the message to be signed
	message, err := u.Pack()
	assert.Equal(t, fault.InvalidSignature, err, "unsigned")
	assert.NotNil(t, message)

	packed, err := instruction.Sign(u, owner)
	require.Nil(t, err, "sign")

	inst, n, err := packed.Unpack(true)
	require.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "whole buffer consumed")

	decoded, ok := inst.(*instruction.Upload)
	require.True(t, ok, "type")
	assert.Equal(t, u.FileHash, decoded.FileHash)
	assert.Equal(t, u.ContentPointer, decoded.ContentPointer)
	assert.Equal(t, u.Metadata, decoded.Metadata)
	assert.Equal(t, u.FileSize, decoded.FileSize)
	assert.Equal(t, u.ContentType, decoded.ContentType)
	assert.Equal(t, u.Description, decoded.Description)
	assert.Equal(t, u.Nonce, decoded.Nonce)
	assert.True(t, owner.Account().Equal(decoded.Owner))

	repacked, err := decoded.Pack()
	require.Nil(t, err, "decoded instruction keeps a valid signature")
	assert.Equal(t, packed, repacked)
	assert.Equal(t, packed.Id(), repacked.Id())
}

func TestGrantOptionalFields(t *testing.T) {
	owner := makeKey(t, true)
	accessor := makeKey(t, true)
	expires := time.Unix(1900000000, 0).UTC()
	maximum := uint64(3)

	g := &instruction.GrantAccess{
		Owner:        owner.Account(),
		File:         digest.NewDigest([]byte("file")),
		Accessor:     accessor.Account(),
		Permissions:  record.ReadRight | record.DownloadRight,
		ExpiresAt:    &expires,
		MaxDownloads: &maximum,
		Nonce:        1,
	}
	packed, err := instruction.Sign(g, owner)
	require.Nil(t, err)

	inst, _, err := packed.Unpack(true)
	require.Nil(t, err)
	decoded := inst.(*instruction.GrantAccess)
	require.NotNil(t, decoded.ExpiresAt)
	assert.Equal(t, expires, *decoded.ExpiresAt)
	require.NotNil(t, decoded.MaxDownloads)
	assert.Equal(t, maximum, *decoded.MaxDownloads)
	assert.Equal(t, g.Permissions, decoded.Permissions)
	assert.True(t, accessor.Account().Equal(decoded.Accessor))

	g.ExpiresAt = nil
	g.MaxDownloads = nil
	packed, err = instruction.Sign(g, owner)
	require.Nil(t, err, "re-sign after change")
	inst, _, err = packed.Unpack(true)
	require.Nil(t, err)
	decoded = inst.(*instruction.GrantAccess)
	assert.Nil(t, decoded.ExpiresAt)
	assert.Nil(t, decoded.MaxDownloads)
}

func TestEveryInstructionUnpacks(t *testing.T) {
	owner := makeKey(t, false)
	file := digest.NewDigest([]byte("f"))
	permission := digest.NewDigest([]byte("p"))

	instructions := []instruction.Instruction{
		&instruction.InitialiseAccount{Owner: owner.Account()},
		&instruction.Verify{Verifier: owner.Account(), File: file, FileHash: file},
		&instruction.RecordAccess{Accessor: owner.Account(), File: file, Permission: permission, Kind: record.DownloadAccess},
		&instruction.RevokeAccess{Owner: owner.Account(), File: file, Permission: permission},
		&instruction.UpdatePublicity{Owner: owner.Account(), File: file, IsPublic: true},
		&instruction.Delete{Owner: owner.Account(), File: file, Nonce: 9},
	}

	for i, inst := range instructions {
		packed, err := instruction.Sign(inst, owner)
		require.Nil(t, err, "%d: sign", i)

		decoded, n, err := packed.Unpack(false)
		require.Nil(t, err, "%d: unpack", i)
		assert.Equal(t, len(packed), n, "%d: length", i)
		assert.Equal(t, inst.Tag(), decoded.Tag(), "%d: tag", i)

		repacked, err := decoded.Pack()
		require.Nil(t, err, "%d: repack", i)
		assert.Equal(t, packed, repacked, "%d: identical bytes", i)
	}
}

func TestUnpackFailures(t *testing.T) {
	owner := makeKey(t, true)
	d := &instruction.Delete{Owner: owner.Account(), File: digest.NewDigest([]byte("x"))}
	packed, err := instruction.Sign(d, owner)
	require.Nil(t, err)

	_, _, err = packed.Unpack(false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "network mismatch")

	_, _, err = packed[:len(packed)-5].Unpack(true)
	assert.Equal(t, fault.NotInstructionPack, err, "truncated")

	_, _, err = instruction.Packed{0x00}.Unpack(true)
	assert.Equal(t, fault.NotInstructionPack, err, "null tag")

	_, _, err = instruction.Packed{0x7f, 0x01}.Unpack(true)
	assert.Equal(t, fault.NotInstructionPack, err, "unknown tag")
}

func TestSignWithWrongKey(t *testing.T) {
	owner := makeKey(t, true)
	other := makeKey(t, true)

	i := &instruction.InitialiseAccount{Owner: owner.Account()}
	_, err := instruction.Sign(i, other)
	assert.Equal(t, fault.InvalidSignature, err)

	// a signature from a different key fails verification
	packed, err := instruction.Sign(&instruction.InitialiseAccount{Owner: other.Account()}, other)
	require.Nil(t, err)
	inst, _, err := packed.Unpack(true)
	require.Nil(t, err)
	forged := inst.(*instruction.InitialiseAccount)
	forged.Owner = owner.Account()
	_, err = forged.Pack()
	assert.Equal(t, fault.InvalidSignature, err)
}

func TestNonceChangesId(t *testing.T) {
	owner := makeKey(t, true)
	a, err := instruction.Sign(&instruction.InitialiseAccount{Owner: owner.Account(), Nonce: 1}, owner)
	require.Nil(t, err)
	b, err := instruction.Sign(&instruction.InitialiseAccount{Owner: owner.Account(), Nonce: 2}, owner)
	require.Nil(t, err)
	assert.NotEqual(t, a.Id(), b.Id())
}
