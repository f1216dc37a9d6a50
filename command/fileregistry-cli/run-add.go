// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/fault"
)

// add an identity: a seed (given or new) under a password, or only
// an account that can receive grants
func runAdd(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}
	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	seed := c.String("seed")
	generate := c.Bool("new")
	receiveOnly := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  description: %s\n", name, description)
		fmt.Fprintf(m.e, "account: %q  new seed: %t\n", receiveOnly, generate)
	}

	switch {
	case "" == receiveOnly:
		err = addSigningIdentity(c, m, name, description, seed, generate)
	case "" == seed && !generate:
		err = m.config.AddReceiveOnlyIdentity(name, description, receiveOnly)
	default:
		err = fault.IncompatibleOptions
	}
	if nil != err {
		return err
	}

	if c.Bool("default") || "" == m.config.DefaultIdentity {
		m.config.DefaultIdentity = name
	}
	m.save = true
	return nil
}

func addSigningIdentity(c *cli.Context, m *metadata, name string, description string, seed string, generate bool) error {
	seed, err := checkSeed(seed, generate, m.testnet)
	if nil != err {
		return err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}
	return m.config.AddIdentity(name, description, seed, password)
}
