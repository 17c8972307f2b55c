package forms

import "errors"

// ErrFormNotFound reports session creation against an unregistered form id.
var ErrFormNotFound = errors.New("form not found")

// ErrSessionNotFound reports an operation against an unknown session id.
var ErrSessionNotFound = errors.New("session not found")
