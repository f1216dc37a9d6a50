// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/record"
)

// returns true if the path is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

func checkName(name string) (string, error) {
	if "" == name {
		return "", fault.IdentityNameIsRequired
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fault.ConnectIsRequired
	}
	return connect, nil
}

func checkDescription(description string) (string, error) {
	if len(description) > record.MaxDescription {
		return "", fault.DescriptionTooLong
	}
	return description, nil
}

// blank with new set creates a fresh seed
func checkSeed(seed string, new bool, testnet bool) (string, error) {
	if "" == seed {
		if !new {
			return "", fault.MissingParameters
		}
		return account.NewBase58EncodedSeed(testnet)
	}
	if new {
		return "", fault.IncompatibleOptions
	}

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	if privateKey.IsTesting() != testnet {
		return "", fault.WrongNetworkForPublicKey
	}
	return seed, nil
}

func checkDigest(name string, s string) (digest.Digest, error) {
	if "" == s {
		return digest.Digest{}, fmt.Errorf("%s: %s", name, fault.MissingParameters)
	}
	d, err := digest.FromHex(s)
	if nil != err {
		return digest.Digest{}, fmt.Errorf("%s: %s", name, err)
	}
	return d, nil
}

// comma separated names or a number
func checkRights(s string) (record.AccessRights, error) {
	if n, err := strconv.ParseUint(s, 10, 8); nil == err {
		rights := record.AccessRights(n)
		if !rights.Valid() {
			return 0, fault.InvalidPermissions
		}
		return rights, nil
	}

	rights := record.AccessRights(0)
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "read":
			rights |= record.ReadRight
		case "download":
			rights |= record.DownloadRight
		case "share":
			rights |= record.ShareRight
		case "all":
			rights |= record.AllRights
		default:
			return 0, fault.InvalidPermissions
		}
	}
	return rights, nil
}

func checkKind(s string) (record.AccessKind, error) {
	switch strings.ToLower(s) {
	case "read":
		return record.ReadAccess, nil
	case "download":
		return record.DownloadAccess, nil
	case "share":
		return 0, fault.AccessKindUnsupportedForShare
	default:
		return 0, fault.InvalidAccessKind
	}
}

// blank is no expiry, otherwise a duration from now or an RFC3339 time
func checkExpiry(s string, now time.Time) (*time.Time, error) {
	if "" == s {
		return nil, nil
	}
	if d, err := time.ParseDuration(s); nil == err {
		if d <= 0 {
			return nil, fault.InvalidExpiration
		}
		t := now.Add(d).UTC()
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if nil != err {
		return nil, fault.InvalidExpiration
	}
	if !t.After(now) {
		return nil, fault.InvalidExpiration
	}
	return &t, nil
}
