package httputil

import "errors"

var (
	// ErrInvalidBody is returned when a request body cannot be parsed.
	ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")

	// ErrRequestBodyEmpty is returned when a request that needs a body has none.
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")

	// ErrInvalidUUID is returned when a path parameter is not a valid UUID.
	ErrInvalidUUID = errors.New("the specified resource ID is not a valid UUID")
)
