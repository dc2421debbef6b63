package events

import "errors"

var ErrNoPendingEvents = errors.New("no pending events")
