// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/fileregistryd/rpc/node"
)

// GetNodeInfo - status of the connected fileregistryd
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {

	var reply node.InfoReply
	err := client.client.Call("Node.Info", &node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}

	client.trace("Info Reply", reply)

	return &reply, nil
}
