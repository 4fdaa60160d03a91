// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as getenv to extract
// environment supplied items; read_file(name) returns the text of a
// file relative to the configuration file, which is how certificates
// and keys are loaded
//
// the file must return a table as its last value
package configuration
