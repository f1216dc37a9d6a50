// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
	"github.com/bitmark-inc/fileregistryd/digest"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	fileHash, _, err := fileOrHash(c.String("file"), c.String("hash"))
	if nil != err {
		return err
	}

	private, err := unlockIdentity(c, m, "Verify File")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "verifier: %s\n", private.Account)
		fmt.Fprintf(m.e, "address: %s\n", address)
		fmt.Fprintf(m.e, "fileHash: %s\n", fileHash)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Verify(private.PrivateKey, address, fileHash)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runPublicity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}
	public := c.Bool("public")

	private, err := unlockIdentity(c, m, "Update Publicity")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", address)
		fmt.Fprintf(m.e, "public: %t\n", public)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdatePublicity(private.PrivateKey, address, public)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	private, err := unlockIdentity(c, m, "Delete File")
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Delete(private.PrivateKey, address)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runFile(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetFile(address)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Status(address)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runFiles(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := resolveAccount(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	var start *digest.Digest
	if s := c.String("start"); "" != s {
		d, err := checkDigest("start", s)
		if nil != err {
			return err
		}
		start = &d
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListFiles(owner, start, c.Int("count"))
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}
