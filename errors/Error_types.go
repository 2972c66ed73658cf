package errors

var (
	ErrUnknown                = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument        = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrThresholdExceeded      = New(ERR_THRESHOLD_EXCEEDED, "threshold exceeded")
	ErrNotFound               = New(ERR_NOT_FOUND, "not found")
	ErrProcessing             = New(ERR_PROCESSING, "error processing")
	ErrConfiguration          = New(ERR_CONFIGURATION, "configuration error")
	ErrContext                = New(ERR_CONTEXT, "context error")
	ErrContextCanceled        = New(ERR_CONTEXT_CANCELED, "context canceled")
	ErrError                  = New(ERR_ERROR, "generic error")
	ErrInsufficientChainState = New(ERR_INSUFFICIENT_CHAIN_STATE, "insufficient chain state")
	ErrDistributionInvalid    = New(ERR_DISTRIBUTION_INVALID, "output distribution invalid")
	ErrSamplingExhausted      = New(ERR_SAMPLING_EXHAUSTED, "decoy sampling exhausted")
	ErrInsufficientDecoys     = New(ERR_INSUFFICIENT_DECOYS, "insufficient decoys")
	ErrRingInvalid            = New(ERR_RING_INVALID, "ring invalid")
	ErrNodeDishonest          = New(ERR_NODE_DISHONEST, "remote node dishonest")
	ErrServiceUnavailable     = New(ERR_SERVICE_UNAVAILABLE, "service unavailable")
	ErrServiceError           = New(ERR_SERVICE_ERROR, "service error")
)

// errors initialization functions

func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewContextCanceledError(message string, params ...interface{}) error {
	return New(ERR_CONTEXT_CANCELED, message, params...)
}
func NewInsufficientChainStateError(message string, params ...interface{}) error {
	return New(ERR_INSUFFICIENT_CHAIN_STATE, message, params...)
}
func NewDistributionInvalidError(message string, params ...interface{}) error {
	return New(ERR_DISTRIBUTION_INVALID, message, params...)
}
func NewSamplingExhaustedError(message string, params ...interface{}) error {
	return New(ERR_SAMPLING_EXHAUSTED, message, params...)
}
func NewInsufficientDecoysError(message string, params ...interface{}) error {
	return New(ERR_INSUFFICIENT_DECOYS, message, params...)
}
func NewRingInvalidError(message string, params ...interface{}) error {
	return New(ERR_RING_INVALID, message, params...)
}
func NewServiceError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_ERROR, message, params...)
}
