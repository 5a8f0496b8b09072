package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrVinylNotFound      = errors.New("vinyl not found")
	ErrReviewNotFound     = errors.New("review not found")
)
