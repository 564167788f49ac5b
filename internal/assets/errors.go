package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid theme directory")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrTemplateParse    = errors.New("template parse failed")
	ErrTemplateRender   = errors.New("template rendering failed")
)
