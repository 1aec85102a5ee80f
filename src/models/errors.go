package models

import "errors"

var (
	// ParseErr marks an invalid lookback period string.
	ParseErr = errors.New("invalid lookback period")

	// Fetch-stage failures. All are fatal for the request; nothing is retried.
	RateLimitedErr        = errors.New("provider rate limit exceeded")
	ProviderInfoErr       = errors.New("provider returned an informational notice")
	ProviderErr           = errors.New("provider returned an error payload")
	UnexpectedResponseErr = errors.New("response does not contain a time series payload")
	MalformedBarErr       = errors.New("bar field failed to parse")
	TransportErr          = errors.New("transport failure")
)
