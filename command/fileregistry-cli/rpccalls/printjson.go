// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrintJSON - indented JSON, under a title line when one is given
func PrintJSON(handle io.Writer, title string, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" != title {
		_, err = fmt.Fprintf(handle, "%s:\n%s\n", title, b)
	} else {
		_, err = fmt.Fprintf(handle, "%s\n", b)
	}
	return err
}

// requests and replies are only shown in verbose mode
func (client *Client) trace(title string, message interface{}) {
	if client.verbose {
		PrintJSON(client.handle, title, message)
	}
}
