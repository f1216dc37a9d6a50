// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/configuration"
	"github.com/bitmark-inc/fileregistryd/fault"
)

type testConfig struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Listen        []string          `gluamapper:"listen"`
	Maximum       int               `gluamapper:"maximum_connections"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testLua = `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.chain = "testing"
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.maximum_connections = 50
M.levels = { DEFAULT = "info", ledger = "debug" }
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(testLua), 0600))

	c := testConfig{}
	err = configuration.ParseConfigurationFile(fileName, &c)
	require.Nil(t, err, "parse")

	assert.Equal(t, dir+"/", c.DataDirectory)
	assert.Equal(t, "testing", c.Chain)
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen)
	assert.Equal(t, 50, c.Maximum)
	assert.Equal(t, "debug", c.Levels["ledger"])
}

func TestParseConfigurationErrors(t *testing.T) {
	c := testConfig{}

	err := configuration.ParseConfigurationFile("/nonexistent/file.conf", &c)
	assert.Equal(t, fault.ConfigurationFileNotFound, err)

	err = configuration.ParseConfigurationFile("x.conf", c)
	assert.Equal(t, fault.InvalidStructPointer, err, "non-pointer")

	n := 5
	err = configuration.ParseConfigurationFile("x.conf", &n)
	assert.Equal(t, fault.InvalidStructPointer, err, "pointer to int")
}
