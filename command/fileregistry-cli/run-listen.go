// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/fileregistryd/command/fileregistry-cli/rpccalls"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/zmqutil"
)

const (
	listenPollInterval = time.Second
	heartbeatTopic     = "heart"
)

func runListen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publisher := m.config.Publisher
	if nil == publisher {
		return fault.ConnectIsRequired
	}

	publicKey, err := hex.DecodeString(publisher.PublicKey)
	if nil != err {
		return fault.InvalidPublicKeyFile
	}

	topic := c.String("topic")

	socket, err := zmqutil.NewSubscriber(publisher.Connect, publicKey, topic, 0)
	if nil != err {
		return err
	}
	defer socket.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "listening: %s  topic: %q\n", publisher.Connect, topic)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	poller := zmq.NewPoller()
	poller.Add(socket, zmq.POLLIN)

	for {
		select {
		case <-sigs:
			return nil
		default:
		}

		polled, err := poller.Poll(listenPollInterval)
		if nil != err {
			return err
		}
		for range polled {
			data, err := socket.RecvMessageBytes(0)
			if nil != err {
				return err
			}
			if err := printEvent(m.w, data, m.verbose); nil != err {
				fmt.Fprintf(m.e, "invalid event: %s\n", err)
			}
		}
	}
}

// event frames are: kind, JSON body
func printEvent(w io.Writer, data [][]byte, verbose bool) error {
	if 2 != len(data) {
		return fmt.Errorf("frame count: %d", len(data))
	}

	kind := string(data[0])
	if heartbeatTopic == kind {
		if verbose {
			fmt.Fprintf(w, "heartbeat: %s\n", data[1])
		}
		return nil
	}

	var body interface{}
	if err := json.Unmarshal(data[1], &body); nil != err {
		return err
	}

	return rpccalls.PrintJSON(w, "", map[string]interface{}{
		"kind":  kind,
		"event": body,
	})
}
