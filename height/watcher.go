// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package height

import (
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/heritaged/fault"
)

// Watcher - follows a host written file holding the decimal height
//
// the directory is watched rather than the file so that hosts which
// replace the file by rename are still followed
type Watcher struct {
	log      *logger.L
	counter  *Counter
	filePath string
	watcher  *fsnotify.Watcher
}

// NewWatcher - create a watcher for the file and load its current value
func NewWatcher(fileName string, counter *Counter, log *logger.L) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = w.Add(filepath.Dir(filePath))
	if nil != err {
		w.Close()
		return nil, err
	}

	hw := &Watcher{
		log:      log,
		counter:  counter,
		filePath: filePath,
		watcher:  w,
	}

	err = hw.load()
	if nil != err {
		w.Close()
		return nil, err
	}
	return hw, nil
}

// Run - background process loop
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			if !fileChanged(event) {
				continue loop
			}
			err := w.load()
			if nil != err {
				log.Warnf("height file: %q  error: %s", w.filePath, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	w.watcher.Close()
	log.Info("stopped")
}

// read the file and advance the counter
func (w *Watcher) load() error {
	data, err := ioutil.ReadFile(w.filePath)
	if nil != err {
		return err
	}

	h, err := parseHeight(data)
	if nil != err {
		return err
	}

	err = w.counter.Set(h)
	if nil != err {
		return err
	}
	w.log.Debugf("height: %d", h)
	return nil
}

func parseHeight(data []byte) (uint64, error) {
	s := strings.TrimSpace(string(data))
	if "" == s {
		return 0, fault.InvalidHeightFile
	}
	h, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.InvalidHeightFile
	}
	return h, nil
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
