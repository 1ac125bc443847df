package upstreams

import (
	"context"
	"errors"

	"github.com/routelens/routelens/prefix"
)

// ErrorCode classifies an analysis failure for API consumers.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates target text that is neither a CIDR nor
	// resolvable through the prefix lookup.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNoData indicates that no source produced usable routes.
	ErrCodeNoData ErrorCode = "NO_DATA"
	// ErrCodeTimeout indicates the query deadline expired.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeUnknown is the catch-all for unclassified errors.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

// AnalysisError is a classified error from one query.
type AnalysisError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ErrorResponse is the JSON body returned on error from the HTTP API.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ClassifyError inspects an error chain and returns an AnalysisError with
// the appropriate code.
func ClassifyError(err error) *AnalysisError {
	if err == nil {
		return nil
	}

	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr
	}

	if errors.Is(err, prefix.ErrInvalidInput) {
		return &AnalysisError{Code: ErrCodeInvalidInput, Message: err.Error(), Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &AnalysisError{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
	}

	return &AnalysisError{Code: ErrCodeUnknown, Message: err.Error(), Err: err}
}
