package hashcat

import "errors"

var (
	// ErrUnknownAttackMode is returned when an attack mode cannot be parsed or is not supported.
	ErrUnknownAttackMode = errors.New("unknown attack mode")
	// ErrInvalidCatalog is returned when the example-hashes output is not a JSON object.
	ErrInvalidCatalog = errors.New("invalid hash mode catalog")
	// ErrNoHashcatPath is returned when a query is attempted without a configured binary.
	ErrNoHashcatPath = errors.New("path to the hashcat binary is not configured")
	// ErrQueryTimeout is returned when a metadata query exceeds its timeout and is killed.
	ErrQueryTimeout = errors.New("timed out")
)
