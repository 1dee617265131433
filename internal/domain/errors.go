package domain

import "errors"

var (
	// ErrConfigUnreadable indicates the report configuration file is missing or invalid.
	// The report falls back to flat mode when it is returned.
	ErrConfigUnreadable = errors.New("config unreadable")

	// ErrRemoteFetchFailed indicates the initial search request failed.
	ErrRemoteFetchFailed = errors.New("remote fetch failed")

	// ErrPageFetchFailed indicates a search request failed mid-pagination.
	ErrPageFetchFailed = errors.New("page fetch failed")

	// ErrInvalidDateFilter indicates an unsupported comparison sign or a malformed date.
	ErrInvalidDateFilter = errors.New("invalid date filter")

	// ErrNoUsers indicates there is nobody to report on.
	ErrNoUsers = errors.New("no users to report on")
)
