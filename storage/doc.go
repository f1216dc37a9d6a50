// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through the single Transaction; reads through a
// PoolHandle only ever see committed data.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. address      = 32 byte SHA3-256 digest (see record package)
// 3. owner        = account bytes (key type ++ public key)
// 4. count        = big endian uint64 (8 bytes)
//
// Accounts:
//
//   U ++ account address        - quota bookkeeping
//                                 data: packed account record
//
// Files:
//
//   F ++ file address           - file fingerprint record
//                                 data: packed file record
//   O ++ owner ++ file address  - files of an owner, for listing
//                                 data: empty
//
// Permissions:
//
//   P ++ permission address     - one accessor's rights over one file
//                                 data: packed permission record
//
// Instructions:
//
//   I ++ instruction id         - applied instructions, replay guard
//                                 data: tag(varint) ++ unix seconds(varint)
//
// Counters:
//
//   N ++ name                   - monotonic sequences
//                                 data: count
//
// Testing:
//   Z ++ key                    - testing data
package storage
