package domain

import "errors"

var (
	ErrInvalidForm       = errors.New("invalid invoice form")
	ErrNoItems           = errors.New("invoice has no line items")
	ErrItemNotFound      = errors.New("invoice item not found")
	ErrExportBlocked     = errors.New("invoice failed export checks")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrAssetNotFound     = errors.New("asset not found")
	ErrAssetUnreadable   = errors.New("asset is not a readable image")
	ErrRenderFailed      = errors.New("document rendering failed")
)
