// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
)

func TestNewDigest(t *testing.T) {
	// SHA3-256("abc")
	expected := "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"

	d := digest.NewDigest([]byte("abc"))
	assert.Equal(t, expected, d.String())

	split := digest.NewDigest([]byte("a"), []byte("bc"))
	assert.Equal(t, d, split, "parts are concatenated")
	assert.False(t, d.IsZero())
	assert.True(t, digest.Digest{}.IsZero())
}

func TestDigestText(t *testing.T) {
	d := digest.NewDigest([]byte("file"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err)

	var decoded digest.Digest
	assert.Nil(t, json.Unmarshal(buffer, &decoded))
	assert.Equal(t, d, decoded)

	_, err = digest.FromHex("1234")
	assert.Equal(t, fault.NotDigest, err, "short hex")

	_, err = digest.FromHex("zz985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532")
	assert.Equal(t, fault.NotDigest, err, "bad hex")
}

func TestFromBytes(t *testing.T) {
	var d digest.Digest
	assert.Equal(t, fault.NotDigest, digest.FromBytes(&d, []byte{1, 2, 3}))

	b := make([]byte, digest.Length)
	b[0] = 0xaa
	assert.Nil(t, digest.FromBytes(&d, b))
	assert.Equal(t, byte(0xaa), d[0])
}
