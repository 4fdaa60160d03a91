// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyBootstrapped          = ExistsError("roles already bootstrapped")
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyVoted                 = ExistsError("already voted")
	CannotDecodePrincipal        = InvalidError("cannot decode principal")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CertificateOutOfDate         = InvalidError("certificate out of date")
	ChecksumMismatch             = InvalidError("checksum mismatch")
	ContributionNotFound         = NotFoundError("contribution not found")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DatabaseVersionUnsupported   = ProcessError("database version unsupported")
	EventNotFound                = NotFoundError("event not found")
	HeightDecreased              = InvalidError("height decreased")
	InvalidAddress               = InvalidError("invalid address")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidCertificate           = InvalidError("invalid certificate")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDataDirectory         = InvalidError("invalid data directory")
	InvalidEventType             = InvalidError("invalid event type")
	InvalidFileName              = InvalidError("invalid file name")
	InvalidHeightFile            = InvalidError("invalid height file")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidMilestone             = InvalidError("invalid milestone")
	InvalidMilestoneLimit        = InvalidError("invalid milestone limit")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidProject               = InvalidError("invalid project")
	InvalidProposal              = InvalidError("invalid proposal")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidQuorum                = InvalidError("invalid quorum percentage")
	InvalidReleasePolicy         = InvalidError("invalid release policy")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MilestoneAlreadyReleased     = StateError("milestone already released")
	MilestoneNotVerified         = StateError("milestone not verified")
	MissingParameters            = InvalidError("missing parameters")
	NotAuthorised                = PermissionError("not authorised")
	NotAvailableDuringStartup    = StateError("not available during startup")
	NotFoundConfigFile           = NotFoundError("configuration file not found")
	NotInitialised               = NotFoundError("not initialised")
	NotRecordPack                = InvalidError("not a record pack")
	Paused                       = StateError("paused")
	ProjectNotFound              = NotFoundError("project not found")
	ProposalNotFound             = NotFoundError("proposal not found")
	QuorumNotMet                 = StateError("quorum not met")
	RateLimiting                 = InvalidError("rate limiting")
	RecordTruncated              = InvalidError("record truncated")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	UnknownRecordType            = InvalidError("unknown record type")
	VoteNotFound                 = NotFoundError("vote not found")
	VotingClosed                 = StateError("voting closed")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e StateError) Error() string      { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrState(e error) bool      { _, ok := e.(StateError); return ok }
