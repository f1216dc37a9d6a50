// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - a command and its byte parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - every listener receives its own copy of each message
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
	dropped   uint64
}

type busses struct {
	Events *BroadcastQueue // ledger state changes
}

// Bus - all available message queues
var Bus = busses{
	Events: &BroadcastQueue{},
}

// Send - queue a message for every listener
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	if nil == parameters {
		parameters = [][]byte{}
	}
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- m:
		default:
			queue.dropped += 1
		}
	}
}

// Chan - register a new listener
//
// size zero selects the default buffer size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Dropped - number of deliveries lost to full listener queues
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.Lock()
	defer queue.Unlock()
	return queue.dropped
}

// Release - close and forget every listener
func (queue *BroadcastQueue) Release() {
	queue.Lock()
	defer queue.Unlock()

	for _, listener := range queue.listeners {
		close(listener)
	}
	queue.listeners = nil
}
