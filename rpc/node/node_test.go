// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/chain"
	"github.com/bitmark-inc/fileregistryd/counter"
	"github.com/bitmark-inc/fileregistryd/mode"
	"github.com/bitmark-inc/fileregistryd/rpc/fixtures"
	"github.com/bitmark-inc/fileregistryd/rpc/mocks"
	"github.com/bitmark-inc/fileregistryd/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	r := mocks.NewMockRegistry(ctl)

	now := time.Unix(1580000000, 0).UTC()
	r.EXPECT().Now().Return(now).Times(1)

	c := counter.Counter(5)
	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now(),
		"100",
		&c,
		r,
		func() []byte { return []byte{0x01, 0xab} },
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Normal.String(), reply.Mode, "wrong mode")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, n.Version, reply.Version, "wrong version")
	assert.Equal(t, now, reply.Now, "wrong time")
	assert.Equal(t, "01ab", reply.PublicKey, "wrong public key")
}

func TestNodeInfoWithoutBroadcaster(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_ = mode.Initialise(chain.Local)
	defer mode.Finalise()

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().Now().Return(time.Now()).Times(1)

	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1", &c, r, nil)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "", reply.PublicKey, "wrong empty public key")
}
