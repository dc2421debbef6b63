package engine

import "errors"

var ErrNoHistory = errors.New("no moves to undo")
