// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/fileregistryd/counter"
	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/rpc/certificate"
	"github.com/bitmark-inc/fileregistryd/rpc/handler"
	"github.com/bitmark-inc/fileregistryd/rpc/listeners"
	"github.com/bitmark-inc/fileregistryd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active JSON RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTPS servers
//
// publicKey may be nil when event publishing is disabled
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, registry ledger.Registry, publicKey func() []byte) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, registry, publicKey),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	httpsListener, err := initialiseHTTPS(log, httpsConfiguration, version, registry, publicKey)
	if nil != err {
		stopAll()
		return err
	}
	if nil != httpsListener {
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, version string, registry ledger.Registry, publicKey func() []byte) (listeners.Listener, error) {

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	// the HTTPS side has its own connection accounting
	var httpsCount counter.Counter
	s := server.Create(log, version, &httpsCount, registry, publicKey)
	hdlr := handler.New(log, s, time.Now(), version, configuration.MaximumConnections)

	l, err := listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
	if nil != err {
		return nil, err
	}

	err = l.Serve()
	if nil != err {
		return nil, err
	}
	return l, nil
}

func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
