// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/configuration"
	"github.com/bitmark-inc/fileregistryd/fault"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	seed, err := checkSeed(c.String("seed"), c.Bool("new"), m.testnet)
	if nil != err {
		return err
	}

	publisher, err := checkPublisher(c.String("publisher"), c.String("publisher-key"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := configuration.New(m.testnet, connect)
	config.DefaultIdentity = name
	config.Publisher = publisher

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	err = config.AddIdentity(name, description, seed, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}

// both or neither of address and key
func checkPublisher(connect string, key string) (*configuration.Publisher, error) {
	if "" == connect && "" == key {
		return nil, nil
	}
	if "" == connect || "" == key {
		return nil, fault.MissingParameters
	}
	if _, err := hex.DecodeString(key); nil != err {
		return nil, fault.InvalidPublicKeyFile
	}
	return &configuration.Publisher{
		Connect:   connect,
		PublicKey: key,
	}, nil
}
