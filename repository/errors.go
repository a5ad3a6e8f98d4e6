package repository

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicatePhone     = errors.New("duplicate phone for user")
	ErrDuplicateFavorite  = errors.New("contact already favorited")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoChange           = errors.New("no change")
)
