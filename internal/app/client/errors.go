package client

import (
	"errors"
	"fmt"
)

var (
	ErrAPIAddressInvalid = errors.New("kisaanstar api address invalid")
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("session is not authorized")
)

// StatusError carries a server rejection: any non-2xx response that is not
// covered by a sentinel above.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("server rejected request with status %d", e.Code)
	}

	return fmt.Sprintf("server rejected request with status %d: %s", e.Code, e.Message)
}
