// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/heritaged/fault"
	"github.com/bitmark-inc/heritaged/principal"
	"github.com/bitmark-inc/heritaged/rpc/certificate"
	"github.com/bitmark-inc/heritaged/util"
	"github.com/bitmark-inc/heritaged/zmqutil"
)

const (
	publisherPublicKeyFilename  = "publisher.public"
	publisherPrivateKeyFilename = "publisher.private"

	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"

	certificateValidity = 10 * 365 * 24 * time.Hour
)

// result of a setup command
type outcome int

const (
	finished outcome = iota // exit main normally
	startUp                 // continue to start the daemon
)

type setupCommand struct {
	names []string
	usage string
	help  []string
	run   func(arguments []string) outcome
}

// commands that only create or inspect key and certificate files,
// they never touch the database or the configuration
var setupCommands = []setupCommand{
	{
		names: []string{"help", "h", "?"},
		help:  []string{"display this message"},
	},
	{
		names: []string{"version", "v"},
		help:  []string{"display version string"},
		run: func([]string) outcome {
			fmt.Println(version)
			return finished
		},
	},
	{
		names: []string{"gen-rpc-cert", "rpc"},
		usage: "[DIR [IPs...]]",
		help: []string{
			"create private key in: DIR/" + rpcPrivateKeyFilename,
			"and the certificate in: DIR/" + rpcCertificateFilename,
			"listed IPs are added to the certificate hosts",
		},
		run: generateRPCCertificate,
	},
	{
		names: []string{"fingerprint", "fp"},
		usage: "[DIR]",
		help:  []string{"print SHA3-256 fingerprint of: DIR/" + rpcCertificateFilename},
		run:   showFingerprint,
	},
	{
		names: []string{"gen-publisher-key", "publisher"},
		usage: "[DIR]",
		help: []string{
			"create private key in: DIR/" + publisherPrivateKeyFilename,
			"and the public key in: DIR/" + publisherPublicKeyFilename,
		},
		run: generatePublisherKey,
	},
	{
		names: []string{"principal", "p"},
		usage: "SEED...",
		help:  []string{"print the principal derived from each seed"},
		run:   showPrincipals,
	},
	{
		names: []string{"start", "run"},
		help:  []string{"run the daemon, same as no arguments"},
		run:   func([]string) outcome { return startUp },
	},
	{
		names: []string{"config-test", "cfg"},
		help:  []string{"read the configuration file and print it as JSON"},
		run:   func([]string) outcome { return startUp }, // needs the configuration first
	},
}

// run a setup command
//
// returns true if main should exit
func processSetupCommand(program string, arguments []string) bool {
	name := "help"
	if len(arguments) > 0 {
		name = arguments[0]
		arguments = arguments[1:]
	}

	c := findSetupCommand(name)
	if nil == c || nil == c.run {
		switch {
		case nil != c:
		case "" == strings.TrimSpace(name):
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", name)
		}
		usage(program)
		exitwithstatus.Exit(1)
	}
	return finished == c.run(arguments)
}

func findSetupCommand(name string) *setupCommand {
	for i := range setupCommands {
		for _, n := range setupCommands[i].names {
			if n == name {
				return &setupCommands[i]
			}
		}
	}
	return nil
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
	fmt.Printf("supported commands:\n\n")
	for _, c := range setupCommands {
		command := strings.TrimSpace(c.names[0] + " " + c.usage)
		alias := ""
		if len(c.names) > 1 {
			alias = "(" + c.names[1] + ")"
		}
		for i, h := range c.help {
			if 0 == i {
				fmt.Printf("  %-28s %-12s - %s\n", command, alias, h)
			} else {
				fmt.Printf("  %-28s %-12s   %s\n", "", "", h)
			}
		}
		fmt.Printf("\n")
	}
}

func generateRPCCertificate(arguments []string) outcome {
	certificateFilename := filenameIn(arguments, rpcCertificateFilename)
	privateKeyFilename := filenameIn(arguments, rpcPrivateKeyFilename)

	addresses := []string{}
	if len(arguments) >= 2 {
		for _, a := range arguments[1:] {
			if "" != a {
				addresses = append(addresses, a)
			}
		}
	}

	err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
	if nil != err {
		exitwithstatus.Message("generate RPC key: %q and certificate: %q error: %s", privateKeyFilename, certificateFilename, err)
	}
	fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)
	return finished
}

func showFingerprint(arguments []string) outcome {
	certificateFilename := filenameIn(arguments, rpcCertificateFilename)
	fingerprint, err := fingerprintFile(certificateFilename)
	if nil != err {
		exitwithstatus.Message("fingerprint of: %q error: %s", certificateFilename, err)
	}
	fmt.Printf("SHA3-256 fingerprint: %s\n", fingerprint)
	return finished
}

func generatePublisherKey(arguments []string) outcome {
	publicKeyFilename := filenameIn(arguments, publisherPublicKeyFilename)
	privateKeyFilename := filenameIn(arguments, publisherPrivateKeyFilename)

	if err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename); nil != err {
		exitwithstatus.Message("generate private key: %q and public key: %q error: %s", privateKeyFilename, publicKeyFilename, err)
	}
	fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)
	return finished
}

func showPrincipals(arguments []string) outcome {
	if 0 == len(arguments) || "" == arguments[0] {
		exitwithstatus.Message("missing seed argument")
	}
	for _, seed := range arguments {
		fmt.Printf("%s  %s\n", principal.FromSeed(seed), seed)
	}
	return finished
}

// configuration file enquiry commands, run after the configuration
// is decoded but before anything is started
//
// returns true if main should exit
func processConfigCommand(arguments []string, options *Configuration) bool {
	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
	case "config-test", "cfg":
		b, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("%s\n", b)
		return true

	default:
		return false
	}
}

// name inside the directory given as first argument, default: current directory
func filenameIn(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 && "" != arguments[0] {
		dir = arguments[0]
	}
	return filepath.Join(dir, name)
}

// SHA3-256 fingerprint of the first certificate in a PEM file
func fingerprintFile(certificateFilename string) (certificate.Fingerprint, error) {
	data, err := ioutil.ReadFile(certificateFilename)
	if nil != err {
		return certificate.Fingerprint{}, err
	}
	block, _ := pem.Decode(data)
	if nil == block || "CERTIFICATE" != block.Type {
		return certificate.Fingerprint{}, fault.InvalidCertificate
	}
	return certificate.FingerprintOf(block.Bytes), nil
}

func makeSelfSignedCertificate(name string, certificateFilename string, privateKeyFilename string, override bool, extraHosts []string) error {
	if util.EnsureFileExists(certificateFilename) {
		return fault.CertificateFileAlreadyExists
	}
	if util.EnsureFileExists(privateKeyFilename) {
		return fault.KeyFileAlreadyExists
	}

	organisation := "heritaged self signed cert for: " + name
	cert, key, err := certgen.NewTLSCertPair(organisation, time.Now().Add(certificateValidity), override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFilename, cert, 0666); nil != err {
		return err
	}
	if err = ioutil.WriteFile(privateKeyFilename, key, 0600); nil != err {
		_ = os.Remove(certificateFilename)
		return err
	}
	return nil
}
