package repository

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrNotOwner  = errors.New("record belongs to another user")
	ErrDuplicate = errors.New("duplicate record")
)
