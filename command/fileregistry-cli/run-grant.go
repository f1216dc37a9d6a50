// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/record"
)

func runGrant(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	if "" == c.String("accessor") {
		return fault.MissingParameters
	}
	accessor, err := resolveAccount(c, m, c.String("accessor"))
	if nil != err {
		return err
	}

	rights, err := checkRights(c.String("rights"))
	if nil != err {
		return err
	}

	expiresAt, err := checkExpiry(c.String("expires"), time.Now())
	if nil != err {
		return err
	}

	var maxDownloads *uint64
	if n := c.Uint64("downloads"); 0 != n {
		maxDownloads = &n
	}

	private, err := unlockIdentity(c, m, "Grant Access")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", address)
		fmt.Fprintf(m.e, "accessor: %s\n", accessor)
		fmt.Fprintf(m.e, "rights: %d\n", rights)
		if nil != expiresAt {
			fmt.Fprintf(m.e, "expires: %s\n", expiresAt.Format(time.RFC3339))
		}
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Grant(&rpccalls.GrantData{
		Owner:        private.PrivateKey,
		File:         address,
		Accessor:     accessor,
		Permissions:  rights,
		ExpiresAt:    expiresAt,
		MaxDownloads: maxDownloads,
	})
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runAccess(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	kind, err := checkKind(c.String("kind"))
	if nil != err {
		return err
	}

	private, err := unlockIdentity(c, m, "Access File")
	if nil != err {
		return err
	}

	permission := record.PermissionAddress(address, private.Account)

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", address)
		fmt.Fprintf(m.e, "permission: %s\n", permission)
		fmt.Fprintf(m.e, "kind: %s\n", kind)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.RecordAccess(private.PrivateKey, address, permission, kind)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runRevoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	if "" == c.String("accessor") {
		return fault.MissingParameters
	}
	accessor, err := resolveAccount(c, m, c.String("accessor"))
	if nil != err {
		return err
	}

	private, err := unlockIdentity(c, m, "Revoke Access")
	if nil != err {
		return err
	}

	permission := record.PermissionAddress(address, accessor)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Revoke(private.PrivateKey, address, permission)
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}

func runPermission(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkDigest("address", c.String("address"))
	if nil != err {
		return err
	}

	accessor, err := resolveAccount(c, m, c.String("accessor"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetPermission(record.PermissionAddress(address, accessor))
	if nil != err {
		return err
	}

	return rpccalls.PrintJSON(m.w, "", response)
}
