package story

import "errors"

var ErrNodeNotFound = errors.New("story node not found")
