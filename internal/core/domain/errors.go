package domain

import "errors"

var (
	ErrStoreWrite      = errors.New("store write failed")
	ErrStoreRead       = errors.New("store read failed")
	ErrTemplateMissing = errors.New("template not found")
	ErrMissingTable    = errors.New("table name is required")
)

var (
	ErrMissingObjectName = errors.New("objectName is required")
	ErrMissingBucket     = errors.New("bucket name is required")
)
