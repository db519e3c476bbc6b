package smoke

import "errors"

// Sentinel errors returned by the smoke client.
var (
	ErrCheckFailed       = errors.New("smoke check failed")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrUnexpectedBody    = errors.New("unexpected body")
	ErrInvalidConfig     = errors.New("invalid smoke config")
	ErrRequestFailed     = errors.New("request failed")
	ErrUnexpectedHeaders = errors.New("unexpected headers")
)
