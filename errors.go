package blogmark

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrStyleNotFound    = errors.New("style not found")
	ErrStandalone       = errors.New("standalone page rendering failed")
)
