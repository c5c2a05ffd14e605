package report

import "errors"

var (
	// ErrBadMagic is returned when a blob does not start with the report magic.
	ErrBadMagic = errors.New("report: bad magic")
	// ErrUnsupportedVersion is returned for reports written by a newer format.
	ErrUnsupportedVersion = errors.New("report: unsupported version")
	// ErrChecksumMismatch is returned when the payload checksum does not match.
	ErrChecksumMismatch = errors.New("report: checksum mismatch")
	// ErrTruncated is returned when a blob ends before the header says it should.
	ErrTruncated = errors.New("report: truncated")
	// ErrUnknownCodec is returned when the header names a codec that is not built in.
	ErrUnknownCodec = errors.New("report: unknown codec")
	// ErrNilResult is returned when Write is called without a result.
	ErrNilResult = errors.New("report: nil result")
)
