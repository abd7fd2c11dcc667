package gormstore

import "errors"

var (
	ErrNilDB            = errors.New("gormstore: gorm db handle is required")
	ErrNilModel         = errors.New("gormstore: model is required")
	ErrSchemaParse      = errors.New("gormstore: failed to parse model schema")
	ErrUnknownAttribute = errors.New("gormstore: model has no such attribute")
	ErrNoPrimaryKey     = errors.New("gormstore: model has no primary key")
	ErrQueryFailed      = errors.New("gormstore: existence query failed")
)
