package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID    = errors.New("failed to parse UUID")
	ErrInvalidParam = errors.New("invalid path parameter")
)
