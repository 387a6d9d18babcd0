package app

import "errors"

var (
	// ErrUnknownLocation indicates a save targeted a branch outside the
	// catalog.
	ErrUnknownLocation = errors.New("unknown archive location")
	// ErrUnknownFolder indicates a save targeted a shift folder outside the
	// catalog.
	ErrUnknownFolder = errors.New("unknown archive folder")
	// ErrReportNotFound indicates an export referenced an id not in the
	// archive.
	ErrReportNotFound = errors.New("report not found")
)
