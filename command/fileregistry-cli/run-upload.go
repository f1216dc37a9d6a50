// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
	"github.com/bitmark-inc/fileregistryd/fault"
)

func runUpload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileHash, size, err := fileOrHash(c.String("file"), c.String("hash"))
	if nil != err {
		return err
	}
	if 0 == size {
		size = c.Uint64("size")
	}

	pointer := c.String("pointer")
	if "" == pointer {
		return fault.MissingParameters
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	private, err := unlockIdentity(c, m, "Upload File")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", private.Account)
		fmt.Fprintf(m.e, "fileHash: %s\n", fileHash)
		fmt.Fprintf(m.e, "size: %d\n", size)
		fmt.Fprintf(m.e, "pointer: %s\n", pointer)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Upload(&rpccalls.UploadData{
		Owner:          private.PrivateKey,
		FileHash:       fileHash,
		ContentPointer: pointer,
		Metadata:       c.String("metadata"),
		FileSize:       size,
		ContentType:    c.String("type"),
		Description:    description,
	})
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}
