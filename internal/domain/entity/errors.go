package entity

import "errors"

var (
	// ErrConfig is fatal at startup.
	ErrConfig = errors.New("invalid configuration")

	// ErrFetch covers transport failures and error statuses for one source.
	ErrFetch = errors.New("fetch failed")

	// ErrParse marks a document or item that could not be interpreted.
	ErrParse = errors.New("parse failed")

	ErrStore  = errors.New("seen store failed")
	ErrNotify = errors.New("notify failed")
)
