package repository

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by all ChannelDirectory backends. Callers branch on
// these with errors.Is; everything else is an opaque storage failure.
var (
	ErrNotFound      = goerr.New("not found")
	ErrAlreadyExists = goerr.New("already exists")
	ErrInvalidInput  = goerr.New("invalid input")
)
