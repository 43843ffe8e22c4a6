/*
This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/antoniszymanski/jstt-go/cmd/jstt/config"
)

type cmdSchema struct {
	Path string `arg:"" type:"path" default:"jstt.schema.json"`
}

func (c *cmdSchema) Run() error {
	var f *os.File
	var err error
	if c.Path != "-" {
		if err = os.MkdirAll(filepath.Dir(c.Path), 0750); err != nil {
			return err
		}
		f, err = os.Create(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
	} else {
		f = os.Stdout
	}

	_, err = io.Copy(f, strings.NewReader(config.Schema()))
	return err
}
