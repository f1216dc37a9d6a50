// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - apply signed instructions to the registry
//
// Each instruction is checked for a valid signature, the correct
// network and a previously unseen id, then all of its writes are
// committed in one storage transaction together with the id.  An
// event describing the change is sent to the message bus after the
// commit succeeds.
package ledger
