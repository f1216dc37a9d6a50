// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/fault"
)

// Sign - sign an instruction with the signer's private key and pack it
func Sign(inst Instruction, privateKey *account.PrivateKey) (Packed, error) {
	if nil == privateKey || !privateKey.Account().Equal(inst.Signer()) {
		return nil, fault.InvalidSignature
	}

	message, err := inst.Pack()
	if nil == err {
		return message, nil
	}
	if fault.InvalidSignature != err {
		return nil, err
	}

	inst.setSignature(privateKey.Sign(message))
	return inst.Pack()
}
