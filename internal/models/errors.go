package models

import (
	"errors"
	"fmt"
)

// ErrNoFeatures is returned when a request body carries no usable fields.
var ErrNoFeatures = errors.New("request body contains no features")

// throttlingCodes are the AWS error codes reported when a call is rate limited.
var throttlingCodes = map[string]bool{
	"ThrottlingException":                    true,
	"Throttling":                             true,
	"TooManyRequestsException":               true,
	"RequestLimitExceeded":                   true,
	"ServiceUnavailable":                     true,
	"ProvisionedThroughputExceededException": true,
}

// ValueConversionError reports a form field that is not a finite number.
type ValueConversionError struct {
	Field string
	Value string
	Err   error
}

func (e *ValueConversionError) Error() string {
	return fmt.Sprintf("field %q: cannot convert %q to a number", e.Field, e.Value)
}

func (e *ValueConversionError) Unwrap() error { return e.Err }

// EndpointInvocationError reports a failed call to the scoring endpoint.
// Code is the AWS error code when the service returned one.
type EndpointInvocationError struct {
	Endpoint string
	Code     string
	Err      error
}

func (e *EndpointInvocationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("invoke endpoint %s: %s: %v", e.Endpoint, e.Code, e.Err)
	}
	return fmt.Sprintf("invoke endpoint %s: %v", e.Endpoint, e.Err)
}

func (e *EndpointInvocationError) Unwrap() error { return e.Err }

// Throttled reports whether the endpoint rejected the call for rate limiting.
func (e *EndpointInvocationError) Throttled() bool {
	return throttlingCodes[e.Code]
}

// ScoringResponseError reports an endpoint response that is not a single number.
type ScoringResponseError struct {
	Body string
	Err  error
}

func (e *ScoringResponseError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("scoring response: %v", e.Err)
	}
	return fmt.Sprintf("scoring response %q: %v", e.Body, e.Err)
}

func (e *ScoringResponseError) Unwrap() error { return e.Err }
