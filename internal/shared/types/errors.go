package types

import "errors"

var (
	ErrNoCostData         = errors.New("billing provider returned no results for the requested period")
	ErrTableNotConfigured = errors.New("no record table configured. Set DDB_TABLE or pass --table")
)
