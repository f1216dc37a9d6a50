// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/fileregistryd/counter"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/mode"
	"github.com/bitmark-inc/fileregistryd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	Registry  ledger.Registry
	PublicKey func() []byte
	counter   *counter.Counter
}

// New - create the node service
//
// publicKey reports the event broadcaster key and may return nil
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, registry ledger.Registry, publicKey func() []byte) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		Registry:  registry,
		PublicKey: publicKey,
		counter:   counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string    `json:"chain"`
	Mode      string    `json:"mode"`
	RPCs      uint64    `json:"rpcs"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Now       time.Time `json:"now"`
	PublicKey string    `json:"publicKey"`
}

// Info - return some information about this node
// only enough for clients to determine node state
// for more detail information use HTTP GET requests
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Now = node.Registry.Now()
	if nil != node.PublicKey {
		if k := node.PublicKey(); nil != k {
			reply.PublicKey = hex.EncodeToString(k)
		}
	}
	return nil
}
