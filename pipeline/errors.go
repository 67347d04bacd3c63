package pipeline

import "errors"

// Sentinel errors returned by the pipeline and its CLI wiring.
var (
	ErrReadInput           = errors.New("read input")
	ErrWriteOutput         = errors.New("write output")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidOption       = errors.New("invalid option")
)
