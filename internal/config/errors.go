package config

import "errors"

var (
	ErrEmptyServer   = errors.New("server address is empty")
	ErrInvalidServer = errors.New("server address is invalid")
)
