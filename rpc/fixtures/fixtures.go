// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"io/ioutil"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/record"
)

// LogCategory - logger channel used by all rpc tests
const LogCategory = "testing"

var logDirectory string

// SetupTestLogger - send all logging to a temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "rpc-test")
	if nil != err {
		panic(err)
	}
	logDirectory = dir

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	if "" != logDirectory {
		_ = os.RemoveAll(logDirectory)
	}
}

// one self signed certificate for all tests
var certificate struct {
	sync.Once
	cert []byte
	key  []byte
}

func makeCertificate() {
	certificate.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		cert, key, err := certgen.NewTLSCertPair("fileregistryd test certificate", validUntil, false, []string{"127.0.0.1", "localhost"})
		if nil != err {
			panic(err)
		}
		certificate.cert = cert
		certificate.key = key
	})
}

// Certificate - PEM encoded test certificate
func Certificate() string {
	makeCertificate()
	return string(certificate.cert)
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	makeCertificate()
	return string(certificate.key)
}

// NewKey - a fresh testnet signing key
func NewKey() *account.PrivateKey {
	seed, err := account.NewBase58EncodedSeed(true)
	if nil != err {
		panic(err)
	}
	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		panic(err)
	}
	return key
}

// FileHash - a fixed fingerprint for test files
var FileHash = digest.NewDigest([]byte("fixture file contents"))

// ActiveFile - a typical file record owned by owner
func ActiveFile(owner *account.Account) *record.File {
	return &record.File{
		Owner:          owner,
		FileHash:       FileHash,
		ContentPointer: "ipfs://fixture",
		FileSize:       1024,
		ContentType:    "text/plain",
		Timestamp:      time.Unix(1580000000, 0).UTC(),
		VerificationId: 1,
		IsActive:       true,
	}
}
