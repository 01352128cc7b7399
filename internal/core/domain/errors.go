// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Target errors
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidDomain = errors.New("invalid domain format")
	ErrEmptyKeyword  = errors.New("could not derive keyword from target")

	// Candidate errors
	ErrEmptyZone      = errors.New("zone cannot be empty")
	ErrEmptyCandidate = errors.New("candidate name cannot be empty")

	// TLD list errors
	ErrTLDListUnavailable = errors.New("tld list could not be fetched")
	ErrTLDListEmpty       = errors.New("tld list contained no usable entries")

	// Run errors
	ErrRunCanceled        = errors.New("run was canceled")
	ErrRunTimeout         = errors.New("run timeout exceeded")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")

	// Export errors
	ErrExportFailed      = errors.New("export failed")
	ErrInvalidOutputPath = errors.New("invalid output path")
)
