// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/rpc/access"
	"github.com/bitmark-inc/fileregistryd/rpc/fixtures"
	"github.com/bitmark-inc/fileregistryd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func TestGrant(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	a := access.New(logger.New(fixtures.LogCategory), r)

	owner := fixtures.NewKey().Account()
	accessor := fixtures.NewKey().Account()
	file := record.FileAddress(owner, fixtures.FileHash)

	arg := instruction.GrantAccess{
		Owner:       owner,
		File:        file,
		Accessor:    accessor,
		Permissions: record.ReadRight,
		Nonce:       3,
	}
	result := ledger.Result{
		Kind:      "access_granted",
		Address:   record.PermissionAddress(file, accessor),
		Timestamp: time.Unix(1580000000, 0).UTC(),
	}
	r.EXPECT().Execute(&arg).Return(&result, nil).Times(1)

	var reply ledger.Result
	err := a.Grant(&arg, &reply)
	assert.Nil(t, err, "wrong Grant")
	assert.Equal(t, result, reply, "wrong reply")

	err = a.Grant(&instruction.GrantAccess{Owner: owner, File: file}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing accessor")
}

func TestRecordAndRevoke(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	a := access.New(logger.New(fixtures.LogCategory), r)

	owner := fixtures.NewKey().Account()
	accessor := fixtures.NewKey().Account()
	file := record.FileAddress(owner, fixtures.FileHash)
	permission := record.PermissionAddress(file, accessor)

	r.EXPECT().Execute(gomock.Any()).Return(nil, fault.DownloadLimitExceeded).Times(1)
	r.EXPECT().Execute(gomock.Any()).Return(&ledger.Result{Kind: "access_revoked", Address: permission}, nil).Times(1)

	var reply ledger.Result
	err := a.Record(&instruction.RecordAccess{
		Accessor:   accessor,
		File:       file,
		Permission: permission,
		Kind:       record.DownloadAccess,
	}, &reply)
	assert.Equal(t, fault.DownloadLimitExceeded, err, "wrong Record")

	err = a.Revoke(&instruction.RevokeAccess{
		Owner:      owner,
		File:       file,
		Permission: permission,
	}, &reply)
	assert.Nil(t, err, "wrong Revoke")
	assert.Equal(t, permission, reply.Address, "wrong address")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)
	a := access.New(logger.New(fixtures.LogCategory), r)

	owner := fixtures.NewKey().Account()
	accessor := fixtures.NewKey().Account()
	file := record.FileAddress(owner, fixtures.FileHash)
	permission := record.PermissionAddress(file, accessor)

	status := ledger.PermissionStatus{
		Address: permission,
		Permission: &record.Permission{
			File:      file,
			Accessor:  accessor,
			Rights:    record.ReadRight | record.DownloadRight,
			GrantedBy: owner,
			IsActive:  true,
		},
		Usable: true,
	}
	r.EXPECT().GetPermission(permission).Return(&status, nil).Times(1)

	var reply ledger.PermissionStatus
	err := a.Get(&access.GetArguments{Permission: permission}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, status, reply, "wrong status")
}
