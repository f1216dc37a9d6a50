// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
)

func runInitialise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	private, err := unlockIdentity(c, m, "Initialise Account")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", private.Account)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.InitialiseAccount(private.PrivateKey)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := resolveAccount(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAccount(owner)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}
