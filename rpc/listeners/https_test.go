// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/fileregistryd/fault"
	"github.com/bitmark-inc/fileregistryd/rpc/fixtures"
	"github.com/bitmark-inc/fileregistryd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Metrics(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Metrics"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

var client *http.Client

func init() {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification

	client = &http.Client{
		Transport: customTransport,
	}
}

func setupHTTPS(t *testing.T, h *testHandler) (int, listeners.Listener) {
	allow := "127.0.0.1/32"
	port := rand.Intn(30000) + 30000

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {allow},
			"metrics": {allow},
		},
	}

	tlsConf, _ := testTLS(t)

	l, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		tlsConf,
		h,
	)
	require.Nil(t, err, "NewHTTPS")
	require.NotNil(t, l, "nil listener")

	return port, l
}

func get(t *testing.T, port int, path string) string {
	resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d%s", port, path))
	require.Nil(t, err, "get: %s", path)
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	require.Nil(t, err, "read body")
	return string(b)
}

func TestHttpsListenerRoutes(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := &testHandler{}
	port, l := setupHTTPS(t, h)

	err := l.Serve()
	require.Nil(t, err, "wrong Serve")
	defer l.Stop()

	assert.Equal(t, "RPC", get(t, port, "/fileregistryd/rpc"), "wrong rpc")
	assert.Equal(t, "Details", get(t, port, "/fileregistryd/details"), "wrong details")
	assert.Equal(t, "Metrics", get(t, port, "/fileregistryd/metrics"), "wrong metrics")
	assert.Equal(t, "Root", get(t, port, "/anything"), "wrong root")

	assert.Equal(t, 1, len(h.allow["details"]), "allow list not set")
}

func TestHttpsListenerWhenDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "wrong listener")
}

func TestHttpsListenerWhenBadConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 0,
			Listen:             []string{"127.0.0.1:1234"},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong connection limit error")

	_, err = listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 1,
			Listen:             []string{"127.0.0.1:1234"},
			Allow: map[string][]string{
				"details": {"not-a-cidr"},
			},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.NotNil(t, err, "wrong cidr error")
}
