// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/util"
)

// NewSubscriber - connect a SUB socket to a CURVE server
//
// the client key pair is generated for this connection only;
// an empty topic receives every message
func NewSubscriber(address string, serverPublicKey []byte, topic string, timeout time.Duration) (*zmq.Socket, error) {
	if publicLength != len(serverPublicKey) {
		return nil, fault.InvalidPublicKeyFile
	}

	connectTo, err := util.CanonicalIPandPort("tcp://", address)
	if nil != err {
		return nil, err
	}

	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return nil, err
	}

	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	// set up as client
	err = socket.SetCurveServer(0)
	if nil != err {
		goto failure
	}
	err = socket.SetCurvePublickey(zmq.Z85decode(publicKey))
	if nil != err {
		goto failure
	}
	err = socket.SetCurveSecretkey(zmq.Z85decode(privateKey))
	if nil != err {
		goto failure
	}
	err = socket.SetCurveServerkey(string(serverPublicKey))
	if nil != err {
		goto failure
	}
	err = socket.SetIpv6(util.IsIPv6(connectTo))
	if nil != err {
		goto failure
	}

	// zero => do not set timeout
	if 0 != timeout {
		err = socket.SetRcvtimeo(timeout)
		if nil != err {
			goto failure
		}
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto failure
	}

	err = socket.SetSubscribe(topic)
	if nil != err {
		goto failure
	}

	err = socket.Connect(connectTo)
	if nil != err {
		goto failure
	}
	return socket, nil

failure:
	socket.Close()
	return nil, err
}
