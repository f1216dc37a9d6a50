// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/fileregistryd/chain"
	"github.com/bitmark-inc/fileregistryd/configuration"
	"github.com/bitmark-inc/fileregistryd/publish"
	"github.com/bitmark-inc/fileregistryd/rpc/listeners"
	"github.com/bitmark-inc/fileregistryd/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "fileregistryd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the leveldb store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the complete daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	ProfileHTTP   string       `gluamapper:"profile_http" json:"profile_http"`

	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// default database name for each chain
var defaultDatabases = map[string]string{
	chain.Live:    defaultLiveDatabase,
	chain.Testing: defaultTestingDatabase,
	chain.Local:   defaultLocalDatabase,
}

// read the Lua configuration over the defaults, then resolve every
// path relative to the data directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := resolveChain(options); nil != err {
		return nil, err
	}

	configurationDirectory, _ := filepath.Split(configurationFileName)
	if err := resolvePaths(options, configurationDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Live,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// HTTPS shares the RPC certificate unless configured
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// validate the chain and pick its database when none was named
func resolveChain(options *Configuration) error {
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	if defaultLiveDatabase == options.Database.Name {
		name, ok := defaultDatabases[options.Chain]
		if !ok {
			return fmt.Errorf("chain: %s no default database setting", options.Chain)
		}
		options.Database.Name = name
	}
	return nil
}

// data directory "." means the directory holding the configuration file
func resolvePaths(options *Configuration, configurationDirectory string) error {

	switch options.DataDirectory {
	case "", "~":
		return fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = configurationDirectory
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// the data directory is never created here
	fileInfo, err := os.Stat(options.DataDirectory)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	for _, f := range []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
	} {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return err
		}
	}

	// database and log names are plain file names inside their directories
	if !util.IsPlainName(options.Database.Name) {
		return fmt.Errorf("database: %q is not plain name", options.Database.Name)
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	if !util.IsPlainName(options.Logging.File) {
		return fmt.Errorf("log file: %q is not plain name", options.Logging.File)
	}
	return nil
}

// replace certificate and key file names by their PEM contents
func loadCertificates(rpc *listeners.RPCConfiguration, https *listeners.HTTPSConfiguration) error {
	for _, f := range []*string{
		&rpc.Certificate,
		&rpc.PrivateKey,
		&https.Certificate,
		&https.PrivateKey,
	} {
		data, err := ioutil.ReadFile(*f)
		if nil != err {
			return err
		}
		*f = string(data)
	}
	return nil
}
