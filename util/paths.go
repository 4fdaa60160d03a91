// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/heritaged/fault"
)

// EnsureAbsolute - a relative path is taken from the directory,
// the result is always cleaned
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// EnsureFileExists - true if the name can be stat'ed
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// PlainFileIn - join a plain file name to a directory
//
// a name containing any directory part is rejected
func PlainFileIn(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		if "" == name || "." == name {
			return "", fault.InvalidFileName
		}
		return filepath.Join(directory, name), nil
	default:
		return "", fault.InvalidFileName
	}
}

// MakeDirectories - create each directory and its parents, owner only
func MakeDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}
