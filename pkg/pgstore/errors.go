package pgstore

import "errors"

var (
	ErrNilQuerier   = errors.New("pgstore: querier is required")
	ErrMissingTable = errors.New("pgstore: table name is required")
	ErrQueryFailed  = errors.New("pgstore: existence query failed")
)
