// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connect         string              `json:"connect"`
	Publisher       *Publisher          `json:"publisher,omitempty"`
	Identities      map[string]Identity `json:"identities"`
}

// Publisher - where to subscribe for ledger events
type Publisher struct {
	Connect   string `json:"connect"`
	PublicKey string `json:"public_key"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// InfoIdentity - identity without any private data
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Private     bool   `json:"private"`
}

// Info - restricted view of the configuration
type Info struct {
	DefaultIdentity string         `json:"default_identity"`
	TestNet         bool           `json:"testnet"`
	Connect         string         `json:"connect"`
	Publisher       *Publisher     `json:"publisher,omitempty"`
	Identities      []InfoIdentity `json:"identities"`
}

// New - empty configuration for a network
func New(testnet bool, connect string) *Configuration {
	return &Configuration{
		TestNet:    testnet,
		Connect:    connect,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	options := &Configuration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// generic JSON decoder
func readConfiguration(filename string, options interface{}) error {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(options)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
//
// a name that is not an identity is tried as a base58 account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		acc, e := account.AccountFromBase58(name)
		if nil != e {
			return nil, err
		}
		if acc.IsTesting() != config.TestNet {
			return nil, fault.WrongNetworkForPublicKey
		}
		return acc, nil
	}

	return account.AccountFromBase58(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}
	if private.IsTesting() != config.TestNet {
		return fault.WrongNetworkForPublicKey
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     private.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameAlreadyExists
	}

	a, err := account.AccountFromBase58(acc)
	if nil != err {
		return err
	}
	if a.IsTesting() != config.TestNet {
		return fault.WrongNetworkForPublicKey
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}

	return nil
}

// ChangePassword - re-encrypt an identity's seed under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	id, err := config.Identity(name)
	if nil != err {
		return err
	}

	private, err := decryptIdentity(oldPassword, id)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(newPassword)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(private.Seed, secretKey)
	if nil != err {
		return err
	}

	id.Data = encrypted
	id.Salt = salt.String()
	config.Identities[name] = *id

	return nil
}

// Info - sorted identities without private data
func (config *Configuration) Info() *Info {
	info := &Info{
		DefaultIdentity: config.DefaultIdentity,
		TestNet:         config.TestNet,
		Connect:         config.Connect,
		Publisher:       config.Publisher,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}
	for name, id := range config.Identities {
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Private:     "" != id.Data,
		})
	}
	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})
	return info
}
