// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/chain"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/mode"
	"github.com/bitmark-inc/logger"
)

func TestMode(t *testing.T) {
	dir, err := ioutil.TempDir("", "mode")
	require.Nil(t, err)
	defer os.RemoveAll(dir)

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	defer logger.Finalise()

	assert.Equal(t, fault.NotInitialised, mode.Finalise())

	require.Nil(t, mode.Initialise(chain.Local))
	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(chain.Live))
	assert.True(t, mode.IsTesting())
	assert.Equal(t, chain.Local, mode.ChainName())
	assert.True(t, mode.Is(mode.Normal))
	assert.Equal(t, "Normal", mode.String())

	require.Nil(t, mode.Finalise())
	assert.True(t, mode.Is(mode.Stopped))

	assert.Equal(t, fault.InvalidChain, mode.Initialise("unknown"))
}
