// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/chain"
	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that run without any configuration file
var noConfiguration = map[string]bool{
	"":            true,
	"help":        true,
	"h":           true,
	"version":     true,
	"generate":    true,
	"fingerprint": true,
}

func main() {

	app := cli.NewApp()
	app.Name = "fileregistry-cli"
	app.Usage = "client for the fileregistryd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " connect to fileregistryd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "use-agent, u",
			Value: "",
			Usage: " executable program that returns the password `EXE`",
		},
		cli.BoolFlag{
			Name:  "zero-agent-cache, z",
			Usage: " force re-entry of agent password",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a seed and account, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise fileregistry-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*fileregistryd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "publisher, P",
					Value: "",
					Usage: " event publisher host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "publisher-key, K",
					Value: "",
					Usage: " event publisher public `HEX` key",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "default",
					Usage: " make this the default identity",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "password",
			Usage:  "change an identity's password",
			Action: runChangePassword,
		},
		{
			Name:   "info",
			Usage:  "display fileregistry-cli configuration",
			Action: runInfo,
		},
		{
			Name:   "init",
			Usage:  "initialise the identity's ledger account",
			Action: runInitialise,
		},
		{
			Name:      "account",
			Usage:     "display quota of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "fingerprint",
			Usage:     "compute the file hash of a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` of data to fingerprint",
				},
			},
			Action: runFingerprint,
		},
		{
			Name:      "upload",
			Usage:     "register a file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+`FILE` to fingerprint for hash and size",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+precomputed file hash `HEX`",
				},
				cli.Uint64Flag{
					Name:  "size, S",
					Value: 0,
					Usage: " file size `BYTES` when using hash",
				},
				cli.StringFlag{
					Name:  "pointer, c",
					Value: "",
					Usage: "*off-ledger content pointer `STRING`",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Value: "",
					Usage: " file metadata `STRING`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "application/octet-stream",
					Usage: " content `TYPE`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " file description `STRING`",
				},
			},
			Action: runUpload,
		},
		{
			Name:      "verify",
			Usage:     "check a file or hash against a registered file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+`FILE` to fingerprint",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+file hash `HEX`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "publicity",
			Usage:     "enable or disable public verification of a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "public, P",
					Usage: " allow anyone to verify",
				},
			},
			Action: runPublicity,
		},
		{
			Name:      "delete",
			Usage:     "retire a file and release its quota",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "file",
			Usage:     "display a file record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
			},
			Action: runFile,
		},
		{
			Name:      "status",
			Usage:     "display the public verification status of a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "files",
			Usage:     "list files of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " start after file `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runFiles,
		},
		{
			Name:      "grant",
			Usage:     "grant an accessor rights over a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "accessor, r",
					Value: "",
					Usage: "*identity name or `ACCOUNT` to receive access",
				},
				cli.StringFlag{
					Name:  "rights, R",
					Value: "read",
					Usage: " comma separated `RIGHTS` [read,download,share]",
				},
				cli.StringFlag{
					Name:  "expires, e",
					Value: "",
					Usage: " expiry as a duration or RFC3339 `TIME`",
				},
				cli.Uint64Flag{
					Name:  "downloads, D",
					Value: 0,
					Usage: " maximum `COUNT` of downloads, zero is unlimited",
				},
			},
			Action: runGrant,
		},
		{
			Name:      "access",
			Usage:     "record a read or download of a file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "kind, k",
					Value: "read",
					Usage: " access `KIND` [read|download]",
				},
			},
			Action: runAccess,
		},
		{
			Name:      "revoke",
			Usage:     "withdraw an accessor's permission",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "accessor, r",
					Value: "",
					Usage: "*identity name or `ACCOUNT` losing access",
				},
			},
			Action: runRevoke,
		},
		{
			Name:      "permission",
			Usage:     "display a permission",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*file `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "accessor, r",
					Value: "",
					Usage: "*identity name or `ACCOUNT` of the accessor",
				},
			},
			Action: runPermission,
		},
		{
			Name:   "node",
			Usage:  "display fileregistryd status",
			Action: runNodeInfo,
		},
		{
			Name:      "listen",
			Usage:     "print ledger events as they are published",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "topic, t",
					Value: "",
					Usage: " only events of `KIND`",
				},
			},
			Action: runListen,
		},
		{
			Name:  "version",
			Usage: "display fileregistry-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		network := c.GlobalString("network")
		switch network {
		case chain.Live, "bitmark":
			network = chain.Live
		case chain.Testing, "test":
			network = chain.Testing
		case chain.Local, "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}
		testnet := chain.IsTesting(network)

		command := c.Args().Get(0)
		if noConfiguration[command] {
			c.App.Metadata["config"] = &metadata{
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file, err := configurationFile(app.Name, network)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				testnet: testnet,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// $XDG_CONFIG_HOME/fileregistry-cli/NETWORK-fileregistry-cli.json
func configurationFile(name string, network string) (string, error) {
	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
	}
	dir, err := checkFileExists(p)
	if nil != err {
		return "", err
	}
	if !dir {
		return "", fmt.Errorf("not a directory: %q", p)
	}
	return path.Join(p, name, network+"-"+name+".json"), nil
}
