// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/heritaged/configuration"
	"github.com/bitmark-inc/heritaged/fault"
)

type section struct {
	Listen  []string `gluamapper:"listen"`
	Maximum uint64   `gluamapper:"maximum"`
}

type testConfiguration struct {
	Chain       string            `gluamapper:"chain"`
	Certificate string            `gluamapper:"certificate"`
	Server      section           `gluamapper:"server"`
	Levels      map[string]string `gluamapper:"levels"`
}

const luaText = `
local M = {}
M.chain = "local"
M.certificate = read_file("test.crt")
M.server = {
  listen = { "127.0.0.1:2130", "[::1]:2130" },
  maximum = 25,
}
M.levels = { DEFAULT = "info", rpc = "debug" }
return M
`

func writeFiles(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	if err := ioutil.WriteFile(filepath.Join(dir, "test.crt"), []byte("-----CERT-----\n"), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFiles(t, luaText)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "local", c.Chain, "wrong chain")
	assert.Equal(t, "-----CERT-----\n", c.Certificate, "wrong certificate")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Server.Listen, "wrong listen")
	assert.Equal(t, uint64(25), c.Server.Maximum, "wrong maximum")
	assert.Equal(t, "debug", c.Levels["rpc"], "wrong level")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	var c testConfiguration
	err := configuration.ParseConfigurationFile("/nonexistent/heritaged.conf", &c)
	assert.Equal(t, fault.NotFoundConfigFile, err, "wrong error")
}

func TestParseConfigurationFileNotStruct(t *testing.T) {
	var c testConfiguration
	err := configuration.ParseConfigurationFile("any.conf", c)
	assert.Equal(t, fault.InvalidStructPointer, err, "value accepted")

	s := "text"
	err = configuration.ParseConfigurationFile("any.conf", &s)
	assert.Equal(t, fault.InvalidStructPointer, err, "string pointer accepted")
}

func TestParseConfigurationFileLuaError(t *testing.T) {
	fileName, cleanup := writeFiles(t, `return read_file("absent.pem")`)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "missing read_file target accepted")
}
