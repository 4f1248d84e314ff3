// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/raffled/api"
	"github.com/bitmark-inc/raffled/background"
	"github.com/bitmark-inc/raffled/escrow"
	"github.com/bitmark-inc/raffled/metrics"
	"github.com/bitmark-inc/raffled/raffle"
	"github.com/bitmark-inc/raffled/rpc"
	"github.com/bitmark-inc/raffled/storage"
	"github.com/bitmark-inc/raffled/watcher"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// NAME=VALUE pairs become globals in the configuration file
	variables := make(map[string]string)
	for _, d := range options["define"] {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == s[0] {
			exitwithstatus.Message("%s: define: %q is not NAME=VALUE", program, d)
		}
		variables[s[0]] = s[1]
	}

	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands only inspect the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HTTPAPI", theConfiguration.HTTPAPI)

	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	// these commands are allowed to access the database
	if len(arguments) > 0 && processDataCommand(log, arguments, store) {
		return
	}

	collectors := metrics.New()
	engine := raffle.New(store, escrow.NewBook(store), collectors)

	err = rpc.Initialise(&theConfiguration.ClientRPC, engine, version, theConfiguration.Faucet)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	httpAPI, err := api.New(&theConfiguration.HTTPAPI, engine, collectors.Registry())
	if nil != err {
		log.Criticalf("api initialise error: %s", err)
		exitwithstatus.Message("api initialise error: %s", err)
	}
	if err = httpAPI.Serve(); nil != err {
		log.Criticalf("api serve error: %s", err)
		exitwithstatus.Message("api serve error: %s", err)
	}
	defer httpAPI.Stop()

	elapsedWatcher, err := watcher.New(&theConfiguration.Watcher, engine, collectors)
	if nil != err {
		log.Criticalf("watcher initialise error: %s", err)
		exitwithstatus.Message("watcher initialise error: %s", err)
	}
	processes := background.Processes{
		elapsedWatcher,
	}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, memoryStats{})
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
