// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/util"
)

// seed layout:
//   header(3) ++ network(1) ++ secret(32) ++ checksum(4)
var (
	seedHeader = []byte{0x5a, 0xfe, 0x46}
	seedNonce  = [24]byte{}
	seedIndex  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04, 0x1f,
	}
)

const (
	seedHeaderLength   = 3
	seedNetworkLength  = 1
	seedSecretLength   = 32
	seedChecksumLength = 4

	seedLength = seedHeaderLength + seedNetworkLength + seedSecretLength + seedChecksumLength
)

// NewBase58EncodedSeed - generate a fresh random seed
func NewBase58EncodedSeed(testnet bool) (string, error) {
	secret := make([]byte, seedSecretLength)
	n, err := rand.Read(secret)
	if nil != err {
		return "", err
	}
	if seedSecretLength != n {
		return "", fmt.Errorf("got: %d bytes, expected: %d bytes", n, seedSecretLength)
	}
	return encodeSeed(testnet, secret), nil
}

func encodeSeed(testnet bool, secret []byte) string {
	net := byte(0x00)
	if testnet {
		net = 0x01
	}
	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, net)
	seed = append(seed, secret...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)
	return util.ToBase58(seed)
}

// PrivateKeyFromBase58Seed - this converts a Base58 encoded seed string and returns a private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed := util.FromBase58(seedBase58Encoded)
	if 0 == len(seed) {
		return nil, fault.CannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.InvalidSeedHeader
	}

	testnet := 0x01 == seed[seedHeaderLength]

	var secretKey [seedSecretLength]byte
	copy(secretKey[:], seed[seedHeaderLength+seedNetworkLength:checksumStart])

	// derive the ed25519 seed by encrypting a fixed index
	ed25519Seed := secretbox.Seal([]byte{}, seedIndex[:], &seedNonce, &secretKey)

	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(ed25519Seed))
	if nil != err {
		return nil, err
	}

	privateKey := &PrivateKey{
		PrivateKeyInterface: &ED25519PrivateKey{
			Test:       testnet,
			PrivateKey: priv,
		},
	}
	return privateKey, nil
}
