// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package files - the file registry operations
//
// A file record is addressed by its owner and content fingerprint.
// Once deleted it is terminal: publicity and counters are frozen.
package files
