// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out of messages to any number of listeners
//
// a message sent with no listener registered is dropped and a slow
// listener never blocks the sender
package messagebus
