// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/fileregistryd/counter"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/rpc/access"
	"github.com/bitmark-inc/fileregistryd/rpc/accounts"
	"github.com/bitmark-inc/fileregistryd/rpc/files"
	"github.com/bitmark-inc/fileregistryd/rpc/instructions"
	"github.com/bitmark-inc/fileregistryd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, registry ledger.Registry, publicKey func() []byte) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(accounts.New(log, registry))
	_ = server.Register(files.New(log, registry))
	_ = server.Register(access.New(log, registry))
	_ = server.Register(instructions.New(log, registry))
	_ = server.Register(node.New(log, start, version, rpcCount, registry, publicKey))

	return server
}
