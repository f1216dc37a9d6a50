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
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/fileregistryd/record"
	"github.com/bitmark-inc/fileregistryd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

type colours struct {
	k1, k2, v1, v2, e string
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "decode", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {
		fmt.Printf(" tags:\n")
		for _, t := range poolTags() {
			fmt.Printf("       %s → %s\n", t.tag, t.name)
		}
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--decode] [--ascii] [--colour] [--count=N] --file=FILE tag [key-prefix]", program)
	}

	verbose := len(options["verbose"]) > 0
	ascii := len(options["ascii"]) > 0
	decode := len(options["decode"]) > 0

	c := colours{}
	if len(options["colour"]) > 0 {
		c = colours{keyColour1, keyColour2, valColour1, valColour2, endColour}
	}

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]
	tag := arguments[0]
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	prefix := []byte(nil)
	if len(arguments) > 1 {
		prefix, err = hex.DecodeString(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "fileregistry-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	err = storage.Initialise(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	p := poolForTag(tag)
	if nil == p {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	cursor := p.NewPrefixCursor(prefix)
	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}

	for i, e := range data {
		fmt.Printf("%d: %sKey: %s%x%s\n", i, c.k1, c.k2, e.Key, c.e)

		if decode {
			if ok := decodeValue(os.Stdout, tag, e.Value); ok {
				continue
			}
		}

		if ascii {
			prefix := fmt.Sprintf("%d: %sVal: %s", i, c.v1, c.v2)
			hexDump(os.Stdout, prefix, c.e, e.Value)
		} else {
			fmt.Printf("%d: %sVal: %s%x%s\n", i, c.v1, c.v2, e.Value, c.e)
		}
	}
}

type poolTag struct {
	tag  string
	name string
}

// every pool with its key prefix
func poolTags() []poolTag {
	poolType := reflect.TypeOf(storage.Pool)
	tags := make([]poolTag, 0, poolType.NumField())
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		tags = append(tags, poolTag{
			tag:  fieldInfo.Tag.Get("prefix"),
			name: fieldInfo.Name,
		})
	}
	return tags
}

// locate the pool handle for a prefix tag
func poolForTag(tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(storage.Pool)
	poolValue := reflect.ValueOf(storage.Pool)
	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			p, ok := poolValue.Field(i).Interface().(*storage.PoolHandle)
			if ok {
				return p
			}
		}
	}
	return nil
}

// print known record types as JSON
func decodeValue(w io.Writer, tag string, value []byte) bool {
	var item interface{}
	var err error
	switch tag {
	case "U":
		item, err = record.AccountFromPacked(value)
	case "F":
		item, err = record.FileFromPacked(value)
	case "P":
		item, err = record.PermissionFromPacked(value)
	default:
		return false
	}
	if nil != err {
		fmt.Fprintf(w, "   decode error: %s\n", err)
		return false
	}

	b, err := json.MarshalIndent(item, "   ", "  ")
	if nil != err {
		return false
	}
	fmt.Fprintf(w, "   %s\n", b)
	return true
}

// dump hex data
func hexDump(w io.Writer, prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}
		fmt.Fprintf(w, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Fprintf(w, "%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Fprintf(w, "|%s\n", suffix)
	}
}
