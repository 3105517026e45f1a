package gpx

import "errors"

// Error kinds, matched with errors.Is at the CLI boundary. Processing stops
// on the first failure; there is no retry and no partial recovery.
var (
	// ErrNoInput means no file matched an input path pattern.
	ErrNoInput = errors.New("no matching input file")

	// ErrParse means malformed XML or an unparseable track point timestamp.
	ErrParse = errors.New("parse error")

	// ErrWrite means the destination could not be written.
	ErrWrite = errors.New("write error")
)
