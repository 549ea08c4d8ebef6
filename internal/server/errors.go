package server

import "errors"

var (
	errNoHandlersProvided = errors.New("no handlers provided")
)
