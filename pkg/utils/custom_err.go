package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrQuoteNotFound       = errors.New("quote not found")
	ErrDigNotFound         = errors.New("dig not found")
	ErrMurmurationNotFound = errors.New("murmuration not found")
	ErrCommentNotFound     = errors.New("comment not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrCacheError      = errors.New("cache error")
	ErrBillingError    = errors.New("billing provider error")
)
