// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instructions_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/rpc/fixtures"
	"github.com/bitmark-inc/fileregistryd/rpc/instructions"
	"github.com/bitmark-inc/fileregistryd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func TestSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	i := instructions.New(logger.New(fixtures.LogCategory), r)

	owner := fixtures.NewKey()
	packed, err := instruction.Sign(&instruction.Delete{
		Owner: owner.Account(),
		File:  record.FileAddress(owner.Account(), fixtures.FileHash),
		Nonce: 3,
	}, owner)
	require.Nil(t, err, "sign")

	result := ledger.Result{
		Id:      packed.Id(),
		Kind:    "delete",
		Address: record.FileAddress(owner.Account(), fixtures.FileHash),
	}
	r.EXPECT().ExecutePacked(packed).Return(&result, nil).Times(1)

	var reply ledger.Result
	err = i.Submit(&instructions.SubmitArguments{Packed: packed.String()}, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, packed.Id(), reply.Id, "wrong id")
	assert.Equal(t, result.Address, reply.Address, "wrong address")
}

func TestSubmitRejectsBadInput(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// nothing reaches the registry
	r := mocks.NewMockRegistry(ctl)
	i := instructions.New(logger.New(fixtures.LogCategory), r)

	tests := []struct {
		packed string
		err    error
	}{
		{"", fault.MissingParameters},
		{"0g", fault.NotInstructionPack},
		{"abc", fault.NotInstructionPack},
		{strings.Repeat("00", 8193), fault.InstructionTooLong},
	}

	var reply ledger.Result
	for _, test := range tests {
		err := i.Submit(&instructions.SubmitArguments{Packed: test.packed}, &reply)
		assert.Equal(t, test.err, err, "packed: %.16q", test.packed)
	}

	err := i.Submit(nil, &reply)
	assert.Equal(t, fault.MissingParameters, err, "nil arguments")
}
