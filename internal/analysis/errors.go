package analysis

import "errors"

var (
	// ErrNotConfigured means no AI credential is set. It is a deployment problem, never retried.
	ErrNotConfigured = errors.New("gemini api key not configured")
	// ErrPayloadTooLarge is returned for media above MaxAnalysisBytes.
	ErrPayloadTooLarge = errors.New("media too large for analysis")
	// ErrMalformedResponse is returned when no JSON object can be recovered from the model output.
	ErrMalformedResponse = errors.New("malformed analysis response")
)
