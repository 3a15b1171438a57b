package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrTemplateNotFound indicates an unknown compliance template ID.
	// Never substituted with a default template.
	ErrTemplateNotFound = goerr.New("compliance template not found")

	// ErrInvalidTemplate indicates a template that failed validation
	ErrInvalidTemplate = goerr.New("invalid compliance template")

	// ErrScanNotFound indicates an unknown scan ID
	ErrScanNotFound = goerr.New("scan summary not found")
)
