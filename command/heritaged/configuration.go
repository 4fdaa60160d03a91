// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/heritaged/chain"
	"github.com/bitmark-inc/heritaged/configuration"
	"github.com/bitmark-inc/heritaged/escrow"
	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/governance"
	"github.com/bitmark-inc/heritaged/ledger"
	"github.com/bitmark-inc/heritaged/publish"
	"github.com/bitmark-inc/heritaged/rpc/listeners"
	"github.com/bitmark-inc/heritaged/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublisherPublicKeyFile  = "publisher.public"
	defaultPublisherPrivateKeyFile = "publisher.private"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "" // the chain's database

	defaultLogDirectory = "log"
	defaultLogFile      = "heritaged.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000

	defaultVotingPeriod  = 100
	defaultQuorumPercent = 51
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the whole daemon configuration
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	HeightFile    string       `gluamapper:"height_file" json:"height_file"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Ledger     ledger.Configuration         `gluamapper:"ledger" json:"ledger"`
	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Logging    logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Heritage,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Ledger: ledger.Configuration{
			Governance: governance.Configuration{
				VotingPeriod:  defaultVotingPeriod,
				QuorumPercent: defaultQuorumPercent,
			},
			Escrow: escrow.Configuration{
				MaximumProjects:   escrow.DefaultMaximumProjects,
				MaximumMilestones: escrow.DefaultMaximumMilestones,
				ReleasePolicy:     escrow.ReleaseAnnounce,
			},
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
		},

		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublisherPublicKeyFile,
			PrivateKey: defaultPublisherPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if "" == options.Database.Name {
		options.Database.Name = chain.DatabaseName(options.Chain)
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fault.InvalidDataDirectory
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.InvalidDataDirectory
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.HeightFile,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// publishing keys are only needed for encrypted broadcast
	if !util.EnsureFileExists(options.Publishing.PrivateKey) {
		options.Publishing.PrivateKey = ""
		options.Publishing.PublicKey = ""
	}

	// the database lives inside its directory
	databaseName, err := util.PlainFileIn(options.Database.Directory, options.Database.Name)
	if nil != err {
		return nil, fmt.Errorf("database name: %q  error: %s", options.Database.Name, err)
	}
	options.Database.Name = databaseName

	// the logger adds its own directory
	if _, err := util.PlainFileIn(options.Logging.Directory, options.Logging.File); nil != err {
		return nil, fmt.Errorf("log file: %q  error: %s", options.Logging.File, err)
	}

	err = util.MakeDirectories(options.Database.Directory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	// done
	return options, nil
}
