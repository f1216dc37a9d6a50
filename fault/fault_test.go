// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/fileregistryd/fault"
)

var (
	errAuthOne      = fault.AuthorisationError("authorisation one")
	errExistsOne    = fault.ExistsError("exists one")
	errIntegrityOne = fault.IntegrityError("integrity one")
	errInvalidOne   = fault.InvalidError("invalid one")
	errLengthOne    = fault.LengthError("length one")
	errNotFoundOne  = fault.NotFoundError("not found one")
	errProcessOne   = fault.ProcessError("process one")
	errRecordOne    = fault.RecordError("record one")
)

// each error must belong to exactly one class
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		auth      bool
		exists    bool
		integrity bool
		invalid   bool
		length    bool
		notFound  bool
		process   bool
		record    bool
	}{
		{errAuthOne, true, false, false, false, false, false, false, false},
		{fault.Unauthorised, true, false, false, false, false, false, false, false},
		{errExistsOne, false, true, false, false, false, false, false, false},
		{fault.FileAlreadyExists, false, true, false, false, false, false, false, false},
		{errIntegrityOne, false, false, true, false, false, false, false, false},
		{fault.HashMismatch, false, false, true, false, false, false, false, false},
		{errInvalidOne, false, false, false, true, false, false, false, false},
		{fault.InvalidFileSize, false, false, false, true, false, false, false, false},
		{errLengthOne, false, false, false, false, true, false, false, false},
		{fault.DescriptionTooLong, false, false, false, false, true, false, false, false},
		{errNotFoundOne, false, false, false, false, false, true, false, false},
		{fault.PermissionNotFound, false, false, false, false, false, true, false, false},
		{errProcessOne, false, false, false, false, false, false, true, false},
		{errRecordOne, false, false, false, false, false, false, false, true},
		{fault.DownloadLimitExceeded, false, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorisation(err) != e.auth {
			t.Errorf("%d: expected 'authorisation' == %v for err = %v", i, e.auth, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrIntegrity(err) != e.integrity {
			t.Errorf("%d: expected 'integrity' == %v for err = %v", i, e.integrity, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}
