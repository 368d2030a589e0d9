package dataset

import "errors"

var (
	// ErrDirectoryNotFound is returned when a class directory that should
	// hold scans does not exist or cannot be read.
	ErrDirectoryNotFound = errors.New("dataset directory not found")

	// ErrImageDecode is returned when a scan file cannot be decoded. The
	// current run aborts; there is no skip-and-continue policy.
	ErrImageDecode = errors.New("image decode failed")

	// ErrEmptyForeground is returned when thresholding classifies every
	// pixel as background, leaving no region to crop.
	ErrEmptyForeground = errors.New("no foreground pixels found")

	// ErrIndexOutOfRange is returned on out-of-bounds sample access.
	ErrIndexOutOfRange = errors.New("sample index out of range")

	// ErrInvalidSplitRatio is returned when the ratio is outside (0,1) or
	// would produce an empty partition.
	ErrInvalidSplitRatio = errors.New("invalid split ratio")
)
