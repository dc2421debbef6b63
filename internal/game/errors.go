package game

import "errors"

var (
	ErrInventoryFull = errors.New("inventory is full")
	ErrItemNotFound  = errors.New("item not found")
)
