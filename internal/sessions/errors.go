package sessions

import "errors"

var (
	ErrNotFound     = errors.New("session not found")
	ErrExpired      = errors.New("session expired")
	ErrInvalidInput = errors.New("invalid session input")
)
