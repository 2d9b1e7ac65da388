package errorz

import "errors"

// Failure categories surfaced to the user.
var (
	EncodingFailed = errors.New("content cannot be encoded")
	SaveFailed     = errors.New("file cannot be saved")
)

// Specific causes, wrapped into one of the categories above.
var (
	EmptyContent      = errors.New("content is empty")
	ContentTooLong    = errors.New("content exceeds qr code capacity")
	InvalidColor      = errors.New("invalid color value")
	UnsupportedFormat = errors.New("unsupported file format")
	DirectoryNotFound = errors.New("target directory does not exist")
)
