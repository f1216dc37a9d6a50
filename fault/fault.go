// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	AuthorisationError GenericError
	ExistsError        GenericError
	IntegrityError     GenericError
	InvalidError       GenericError
	LengthError        GenericError
	NotFoundError      GenericError
	ProcessError       GenericError
	RecordError        GenericError
)

// common errors - keep in alphabetic order
var (
	AccessKindUnsupportedForShare = InvalidError("share access cannot be recorded")
	AccessRevoked                 = RecordError("access revoked")
	AccountAlreadyExists          = ExistsError("account already exists")
	AccountInactive               = RecordError("account is not active")
	AccountNotFound               = NotFoundError("account not found")
	AlreadyDeleted                = RecordError("file already deleted")
	AlreadyInitialised            = ProcessError("already initialised")
	AlreadyRevoked                = RecordError("access already revoked")
	CannotDecodeAccount           = InvalidError("cannot decode account")
	CannotDecodePrivateKey        = InvalidError("cannot decode private key")
	CannotDecodeSeed              = InvalidError("cannot decode seed")
	CertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ChecksumMismatch              = ProcessError("checksum mismatch")
	ConfigurationFileNotFound     = NotFoundError("configuration file not found")
	ConnectionClosed              = ProcessError("connection closed")
	ConnectIsRequired             = InvalidError("connect is required")
	ContentTypeTooLong            = LengthError("content type too long")
	CryptoFailed                  = ProcessError("crypto failed")
	DatabaseIsNotSet              = ProcessError("database is not set")
	DescriptionTooLong            = LengthError("description too long")
	DownloadLimitExceeded         = RecordError("download limit exceeded")
	FieldTooLong                  = LengthError("field too long")
	FileAlreadyExists             = ExistsError("file already exists")
	FileNotActive                 = RecordError("file is not active")
	FileNotFound                  = NotFoundError("file not found")
	FileOrHashRequired            = InvalidError("either a file or a hash is required")
	HashMismatch                  = IntegrityError("file hash does not match")
	IdentityNameAlreadyExists     = ExistsError("identity name already exists")
	IdentityNameIsRequired        = InvalidError("identity name is required")
	IdentityNameNotFound          = NotFoundError("identity name not found")
	IncompatibleOptions           = InvalidError("incompatible options")
	InstructionAlreadyExists      = ExistsError("instruction already applied")
	InstructionTooLong            = LengthError("instruction too long")
	InvalidAccessKind             = InvalidError("invalid access kind")
	InvalidAccessPermission       = InvalidError("permission does not belong to file")
	InvalidChain                  = InvalidError("invalid chain")
	InvalidCount                  = InvalidError("invalid count")
	InvalidCursor                 = InvalidError("invalid cursor")
	InvalidExpiration             = InvalidError("expiration must be in the future")
	InvalidFileHash               = InvalidError("invalid file hash")
	InvalidFileSize               = InvalidError("invalid file size")
	InvalidIpAddress              = InvalidError("invalid IP address")
	InvalidKeyLength              = InvalidError("invalid key length")
	InvalidKeyType                = InvalidError("invalid key type")
	InvalidLoggerChannel          = InvalidError("invalid logger channel")
	InvalidNonce                  = InvalidError("invalid nonce")
	InvalidPasswordLength         = LengthError("password must be at least 8 characters")
	InvalidPermissions            = InvalidError("invalid permissions")
	InvalidPortNumber             = InvalidError("invalid port number")
	InvalidPrivateKeyFile         = InvalidError("invalid private key file")
	InvalidPublicKeyFile          = InvalidError("invalid public key file")
	InvalidSeedHeader             = InvalidError("invalid seed header")
	InvalidSeedLength             = InvalidError("invalid seed length")
	InvalidSignature              = InvalidError("invalid signature")
	InvalidStructPointer          = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists          = ExistsError("key file already exists")
	MetadataTooLong               = LengthError("metadata too long")
	MissingParameters             = InvalidError("missing parameters")
	NotDigest                     = InvalidError("not a digest")
	NotInitialised                = ProcessError("not initialised")
	NotInstructionPack            = InvalidError("not instruction pack")
	NotPrivateKey                 = InvalidError("not private key")
	NotPublicKey                  = InvalidError("not public key")
	PasswordMismatch              = InvalidError("password mismatch")
	PermissionAlreadyExists       = ExistsError("access permission already exists")
	PermissionNotFound            = NotFoundError("access permission not found")
	PointerTooLong                = LengthError("content pointer too long")
	PublicVerificationNotEnabled  = AuthorisationError("public verification is not enabled")
	QuotaExceeded                 = RecordError("storage quota exceeded")
	RateLimiting                  = ProcessError("rate limiting")
	RecordCorrupt                 = ProcessError("stored record is corrupt")
	SignatureTooLong              = LengthError("signature too long")
	TooManyFiles                  = RecordError("too many files")
	TransactionAlreadyInUse       = ProcessError("transaction already in use")
	Unauthorised                  = AuthorisationError("unauthorised operation")
	UnexpectedNumberOfArguments   = InvalidError("unexpected number of arguments")
	UnknownInstruction            = InvalidError("unknown instruction")
	WrongNetworkForPublicKey      = InvalidError("wrong network for public key")
	WrongPassword                 = InvalidError("wrong password")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e IntegrityError) Error() string     { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrIntegrity(e error) bool     { _, ok := e.(IntegrityError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
