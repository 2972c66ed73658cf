// Package errors provides typed error values and helpers for categorising the faults
// raised while selecting decoys and assembling rings.
package errors

import (
	"context"
	"errors"
)

// IsRetryableError determines if an operation may succeed when repeated with fresh
// random draws or after the collaborator recovers.
// Faults that point at the data source itself are never retryable against that source.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Check if context was cancelled - not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_SAMPLING_EXHAUSTED,
			ERR_SERVICE_UNAVAILABLE,
			ERR_SERVICE_ERROR:
			return true
		case ERR_NODE_DISHONEST,
			ERR_DISTRIBUTION_INVALID:
			return false
		}
	}

	return false
}

// IsMaliciousResponseError determines if an error indicates a remote node that should
// no longer be trusted.
//
// Parameters:
//   - err: Error to check
//
// Returns:
//   - bool: true if error indicates malicious behaviour
func IsMaliciousResponseError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_NODE_DISHONEST,
			ERR_DISTRIBUTION_INVALID:
			return true
		}
	}

	return false
}

// IsChainStateError determines if an error can only be resolved by waiting for more blocks.
func IsChainStateError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		return tErr.Code() == ERR_INSUFFICIENT_CHAIN_STATE
	}

	return false
}

// IsContextError determines if an error is related to context cancellation or deadline.
func IsContextError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var tErr *Error
	if As(err, &tErr) {
		if tErr.Code() == ERR_CONTEXT_CANCELED || tErr.Code() == ERR_CONTEXT {
			return true
		}
	}

	return false
}

// GetErrorCategory returns a string representing the category of the error.
// This is useful for logging and metrics.
//
// Returns:
//   - string: Error category (e.g., "context", "malicious", "chain", "sampling", "unknown")
func GetErrorCategory(err error) string {
	if err == nil {
		return "none"
	}

	if IsContextError(err) {
		return "context"
	}

	if IsMaliciousResponseError(err) {
		return "malicious"
	}

	var tErr *Error
	if As(err, &tErr) {
		// Group by error code ranges
		code := tErr.Code()
		switch {
		case code >= 1 && code <= 9:
			return "generic"
		case code >= 10 && code <= 19:
			return "chain"
		case code >= 20 && code <= 29:
			return "sampling"
		case code >= 50 && code <= 59:
			return "service"
		}
	}

	return "unknown"
}
