package media

import "errors"

var (
	// ErrNoPoints is returned when a file holds no usable points.
	ErrNoPoints = errors.New("media: file contains no points")

	// ErrIncompleteRead is returned when a binary path ends mid-record.
	ErrIncompleteRead = errors.New("media: incomplete read")

	// ErrMalformedRecord describes a text line that is not "real,imaginary".
	// It is reported as a diagnostic; the line is skipped.
	ErrMalformedRecord = errors.New("media: malformed record")

	// ErrUnsupportedFormat is returned for an extension no reader handles.
	ErrUnsupportedFormat = errors.New("media: unsupported format")
)
