// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/configuration"
	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
)

// global identity or the configured default
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return checkName(name)
}

// unlock the signing identity using agent, flag or prompt
func unlockIdentity(c *cli.Context, m *metadata, title string) (*configuration.Private, error) {

	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}

	agent := c.GlobalString("use-agent")
	clearCache := c.GlobalBool("zero-agent-cache")
	password := c.GlobalString("password")

	if "" != agent {
		password, err = passwordFromAgent(name, title, agent, clearCache)
		if nil != err {
			return nil, err
		}
	} else if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}

	return m.config.Private(password, name)
}

// identity name, account string or blank for the current identity
func resolveAccount(c *cli.Context, m *metadata, name string) (*account.Account, error) {
	if "" == name {
		n, err := identityName(c, m)
		if nil != err {
			return nil, err
		}
		name = n
	}
	return m.config.Account(name)
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	connect, err := checkConnect(m.config.Connect)
	if nil != err {
		return nil, err
	}
	return rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
}
