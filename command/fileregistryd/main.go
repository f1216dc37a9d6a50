// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/mode"
	"github.com/bitmark-inc/fileregistryd/publish"
	"github.com/bitmark-inc/fileregistryd/rpc"
	"github.com/bitmark-inc/fileregistryd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	switch {
	case len(options["version"]) > 0:
		processSetupCommand(program, []string{"version"})
		return
	case len(options["help"]) > 0:
		processSetupCommand(program, []string{"help"})
		return
	case len(arguments) > 0 && processSetupCommand(program, arguments):
		// key and certificate generation need no configuration
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: exactly one config-file option is required, %d were given", program, len(options["config-file"]))
	}

	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: configuration: %q  error: %s", program, configurationFile, err)
	}

	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %v", theConfiguration)

	if "" != theConfiguration.PidFile {
		removePidFile, err := createPidFile(theConfiguration.PidFile)
		if os.IsExist(err) {
			exitwithstatus.Message("%s: another instance is already running", program)
		} else if nil != err {
			exitwithstatus.Message("%s: PID file: %q  error: %s", program, theConfiguration.PidFile, err)
		}
		defer removePidFile()
	}

	// mode first so that services see the chain
	stopIfFailed(log, "mode", mode.Initialise(theConfiguration.Chain))
	defer mode.Finalise()

	// the pprof handlers are registered on the default mux only
	if "" != theConfiguration.ProfileHTTP {
		go func() {
			log.Warnf("profile listener on: %s", theConfiguration.ProfileHTTP)
			err := http.ListenAndServe(theConfiguration.ProfileHTTP, nil)
			exitwithstatus.Message("profile error: %s", err)
		}()
	}

	log.Infof("chain: %s  test mode: %v", mode.ChainName(), mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("client rpc: %#v", theConfiguration.ClientRPC)
	log.Debugf("https rpc: %#v", theConfiguration.HttpsRPC)
	log.Debugf("publishing: %#v", theConfiguration.Publishing)

	stopIfFailed(log, "storage", storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite))
	defer storage.Finalise()

	// the single writer over all registry state
	registry := ledger.New(logger.New("ledger"), mode.IsTesting(), nil)

	// offline queries over the local store
	if len(arguments) > 0 && processDataCommand(log, arguments, registry) {
		return
	}

	stopIfFailed(log, "publish", publish.Initialise(&theConfiguration.Publishing))
	defer publish.Finalise()

	stopIfFailed(log, "rpc certificate", loadCertificates(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC))
	stopIfFailed(log, "rpc", rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, registry, publish.PublicKey))
	defer rpc.Finalise()

	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	quiet := len(options["quiet"]) > 0
	sig := waitForSignal(quiet)
	log.Infof("received signal: %v", sig)

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

// log and exit; deferred finalisers still run via the exit handler
func stopIfFailed(log *logger.L, what string, err error) {
	if nil == err {
		return
	}
	log.Criticalf("%s initialise error: %s", what, err)
	exitwithstatus.Message("%s initialise error: %s", what, err)
}

// exclusive creation so a second daemon on the same data refuses to start
func createPidFile(name string) (func(), error) {
	lockFile, err := os.OpenFile(name, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
	if nil != err {
		return nil, err
	}
	fmt.Fprintf(lockFile, "%d\n", os.Getpid())
	lockFile.Close()

	return func() { os.Remove(name) }, nil
}

func waitForSignal(quiet bool) os.Signal {
	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch

	if !quiet {
		fmt.Printf("\nreceived signal: %v\nshutting down…\n", sig)
	}
	return sig
}
