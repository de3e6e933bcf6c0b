package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrSignatureMismatch = goerr.New("webhook signature mismatch")
	ErrInvalidPayload    = goerr.New("invalid webhook payload")
)
