// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/fileregistryd/messagebus"
	"github.com/bitmark-inc/fileregistryd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 60 * time.Second
	heartbeatCommand  = "heart"

	publishZapDomain = "publish"
)

// frame sender, a PUB socket in production
type sender interface {
	SendMessage(parts ...interface{}) (int, error)
}

type broadcaster struct {
	log     *logger.L
	events  <-chan messagebus.Message
	sockets []sender
	closers []*zmq.Socket
}

// bind the PUB sockets
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, publicKey []byte, broadcast []string, events <-chan messagebus.Message) error {

	brdc.log = log
	brdc.events = events

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, publishZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	for _, s := range []*zmq.Socket{socket4, socket6} {
		if nil != s {
			brdc.sockets = append(brdc.sockets, s)
			brdc.closers = append(brdc.closers, s)
		}
	}
	return nil
}

// Run - forward each event as: kind, JSON body
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log
	log.Info("starting…")

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-heartbeat.C:
			brdc.send(heartbeatCommand, []byte(time.Now().UTC().Format(time.RFC3339)))
		case m, ok := <-brdc.events:
			if !ok {
				break loop
			}
			for _, p := range m.Parameters {
				brdc.send(m.Command, p)
			}
		}
	}

	for _, s := range brdc.closers {
		s.Close()
	}
	log.Info("stopped")
}

func (brdc *broadcaster) send(command string, body []byte) {
	for _, s := range brdc.sockets {
		_, err := s.SendMessage(command, body)
		if nil != err {
			brdc.log.Errorf("send: %s  error: %s", command, err)
		}
	}
}
