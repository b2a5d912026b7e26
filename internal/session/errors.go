package session

import "errors"

// ErrAlreadyRunning is returned by Run when the runner was started before.
var ErrAlreadyRunning = errors.New("session: runner already started")
