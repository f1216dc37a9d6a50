// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/fileregistryd/messagebus"
)

const (
	statsInterval = time.Minute
	mebibyte      = 1024 * 1024
)

// periodic resource report, enabled by --memory-stats
func memstats() {
	log := logger.New("memory")

	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		logResources(log)
		<-ticker.C
	}
}

func logResources(log *logger.L) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	log.Infof("heap: %d MiB  cumulative: %d MiB  system: %d MiB  gc runs: %d",
		m.HeapAlloc/mebibyte, m.TotalAlloc/mebibyte, m.Sys/mebibyte, m.NumGC)
	log.Infof("goroutines: %d  dropped events: %d",
		runtime.NumGoroutine(), messagebus.Bus.Events.Dropped())
}
