// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/rpc/certificate"
	"github.com/bitmark-inc/fileregistryd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer := fixtures.Certificate()
	key := fixtures.Key()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetWhenKeyMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(),
		"not a key",
	)
	assert.NotNil(t, err, "wrong error")
}

func TestMakeSelfSigned(t *testing.T) {
	dir, err := ioutil.TempDir("", "certificate")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	crt := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err = certificate.MakeSelfSigned("rpc", crt, key, []string{"127.0.0.1"})
	require.Nil(t, err, "wrong make")

	c, err := ioutil.ReadFile(crt)
	require.Nil(t, err)
	k, err := ioutil.ReadFile(key)
	require.Nil(t, err)

	_, err = tls.X509KeyPair(c, k)
	assert.Nil(t, err, "generated pair does not load")

	err = certificate.MakeSelfSigned("rpc", crt, key, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "overwrote certificate")
}
