// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
)

type generateReply struct {
	Seed    string           `json:"seed"`
	Account *account.Account `json:"account"`
	TestNet bool             `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewBase58EncodedSeed(m.testnet)
	if nil != err {
		return err
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", generateReply{
		Seed:    seed,
		Account: privateKey.Account(),
		TestNet: m.testnet,
	})
}
