// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/logger"
)

// Listener - a started or startable network server
type Listener interface {
	Serve() error
	Stop()
}

// normalise each listen address and select the network for it
//
// "*:PORT" becomes "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	normalised := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, err
		}
		normalised[i] = net.JoinHostPort(host, port)
	}

	return networks, normalised, nil
}
