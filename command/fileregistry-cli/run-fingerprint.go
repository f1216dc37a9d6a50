// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
)

type fingerprintReply struct {
	File     string        `json:"file"`
	FileHash digest.Digest `json:"fileHash"`
	FileSize uint64        `json:"fileSize"`
}

func runFingerprint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return fault.MissingParameters
	}

	fileHash, size, err := fingerprintFile(fileName)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", fingerprintReply{
		File:     fileName,
		FileHash: fileHash,
		FileSize: size,
	})
}

// hash and size of the whole file
func fingerprintFile(fileName string) (digest.Digest, uint64, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return digest.Digest{}, 0, err
	}
	return digest.NewDigest(data), uint64(len(data)), nil
}

// exactly one of a file name or a hex hash
func fileOrHash(fileName string, hash string) (digest.Digest, uint64, error) {
	switch {
	case "" != fileName && "" == hash:
		return fingerprintFile(fileName)
	case "" == fileName && "" != hash:
		d, err := checkDigest("hash", hash)
		return d, 0, err
	default:
		return digest.Digest{}, 0, fault.FileOrHashRequired
	}
}
