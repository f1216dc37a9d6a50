// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/rand"
	"crypto/tls"
	"encoding/binary"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a fileregistryd
func NewClient(testnet bool, connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return NewClientFromConn(testnet, conn, verbose, handle), nil
}

// NewClientFromConn - wrap an already established connection
func NewClientFromConn(testnet bool, conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the fileregistryd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// random nonce so that repeated identical requests are distinct instructions
func makeNonce() (uint64, error) {
	var buffer [8]byte
	if _, err := rand.Read(buffer[:]); nil != err {
		return 0, err
	}
	return binary.BigEndian.Uint64(buffer[:]), nil
}
