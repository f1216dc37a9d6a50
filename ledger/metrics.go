// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	appliedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fileregistryd",
			Subsystem: "ledger",
			Name:      "instructions_applied_total",
			Help:      "instructions committed, by kind",
		},
		[]string{"kind"},
	)
	rejectedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fileregistryd",
			Subsystem: "ledger",
			Name:      "instructions_rejected_total",
			Help:      "instructions aborted, by kind",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(appliedCounter, rejectedCounter)
}
