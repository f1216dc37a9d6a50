// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/chain"
	"github.com/bitmark-inc/fileregistryd/counter"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/mode"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/rpc/access"
	"github.com/bitmark-inc/fileregistryd/rpc/accounts"
	"github.com/bitmark-inc/fileregistryd/rpc/files"
	"github.com/bitmark-inc/fileregistryd/rpc/fixtures"
	"github.com/bitmark-inc/fileregistryd/rpc/instructions"
	"github.com/bitmark-inc/fileregistryd/rpc/mocks"
	"github.com/bitmark-inc/fileregistryd/rpc/node"
	"github.com/bitmark-inc/fileregistryd/rpc/server"
	"github.com/bitmark-inc/logger"
)

// following tests make sure proper methods are registered to server

func connect(t *testing.T, r ledger.Registry) *rpc.Client {
	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, r, nil)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return jsonrpc.NewClient(clientConn)
}

func TestAccountsInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := connect(t, mocks.NewMockRegistry(ctl))
	defer client.Close()

	var reply ledger.Result
	err := client.Call("Accounts.Initialise", &instruction.InitialiseAccount{}, &reply)
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong Accounts.Initialise")
}

func TestFilesGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	client := connect(t, r)
	defer client.Close()

	owner := fixtures.NewKey().Account()
	address := record.FileAddress(owner, fixtures.FileHash)
	r.EXPECT().GetFile(address).Return(nil, fault.FileNotFound).Times(1)

	var reply files.GetReply
	err := client.Call("Files.Get", &files.GetArguments{Address: address}, &reply)
	assert.Equal(t, fault.FileNotFound.Error(), err.Error(), "wrong Files.Get")
}

func TestFilesUploadRoundTrip(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	client := connect(t, r)
	defer client.Close()

	key := fixtures.NewKey()
	upload := &instruction.Upload{
		Owner:          key.Account(),
		FileHash:       fixtures.FileHash,
		ContentPointer: "ipfs://x",
		FileSize:       10,
		ContentType:    "text/plain",
		Nonce:          99,
	}
	_, err := instruction.Sign(upload, key)
	assert.Nil(t, err, "sign")

	address := record.FileAddress(key.Account(), fixtures.FileHash)

	// the decoded instruction must still carry a valid signature
	r.EXPECT().Execute(gomock.Any()).DoAndReturn(func(inst instruction.Instruction) (*ledger.Result, error) {
		if _, err := inst.Pack(); nil != err {
			return nil, err
		}
		return &ledger.Result{Kind: "file_uploaded", Address: address, VerificationId: 3}, nil
	}).Times(1)

	var reply ledger.Result
	err = client.Call("Files.Upload", upload, &reply)
	assert.Nil(t, err, "wrong Files.Upload")
	assert.Equal(t, address, reply.Address, "wrong address")
	assert.Equal(t, uint64(3), reply.VerificationId, "wrong verification id")
}

func TestAccessGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	client := connect(t, r)
	defer client.Close()

	r.EXPECT().GetPermission(gomock.Any()).Return(nil, fault.PermissionNotFound).Times(1)

	var reply ledger.PermissionStatus
	err := client.Call("Access.Get", &access.GetArguments{}, &reply)
	assert.Equal(t, fault.PermissionNotFound.Error(), err.Error(), "wrong Access.Get")
}

func TestAccountsGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := connect(t, mocks.NewMockRegistry(ctl))
	defer client.Close()

	var reply accounts.GetReply
	err := client.Call("Accounts.Get", &accounts.GetArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong Accounts.Get")
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(chain.Local)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	r.EXPECT().Now().Return(time.Unix(1580000000, 0).UTC()).Times(1)

	client := connect(t, r)
	defer client.Close()

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestInstructionsSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	client := connect(t, r)
	defer client.Close()

	r.EXPECT().ExecutePacked(instruction.Packed{0x01, 0x02}).Return(nil, fault.NotInstructionPack).Times(1)

	var reply ledger.Result
	err := client.Call("Instructions.Submit", &instructions.SubmitArguments{Packed: "0102"}, &reply)
	assert.Equal(t, fault.NotInstructionPack.Error(), err.Error(), "wrong Instructions.Submit")
}
